package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings read from .rangepick.yaml and RANGEPICK_*
// environment variables. Picker settings are kept as raw tokens; callers
// parse them alongside their flags.
type Config interface {
	BasePath() string
	Picker() PickerDefaults
}

// PickerDefaults are the configured fallbacks for picker flags.
type PickerDefaults struct {
	MinDetail       string
	MaxDetail       string
	View            string
	ReturnValue     string
	Locale          string
	CalendarType    string
	ShowWeekNumbers bool
}

// LoadConfig reads .rangepick.yaml from $RANGEPICK_CONFIG_PATH or the
// working directory. A missing file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.rangepick")
	v.SetDefault("minDetail", "century")
	v.SetDefault("maxDetail", "month")
	v.SetDefault("view", "month")
	v.SetDefault("returnValue", "start")
	v.SetDefault("locale", "")
	v.SetDefault("calendarType", "")
	v.SetDefault("showWeekNumbers", false)
	v.SetConfigName(".rangepick") // .yaml is implicit
	v.SetEnvPrefix("RANGEPICK")
	v.AutomaticEnv()

	if override := os.Getenv("RANGEPICK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand store path: %w", err)
	}

	return &fileConfig{
		Path: path,
		Defaults: PickerDefaults{
			MinDetail:       v.GetString("minDetail"),
			MaxDetail:       v.GetString("maxDetail"),
			View:            v.GetString("view"),
			ReturnValue:     v.GetString("returnValue"),
			Locale:          v.GetString("locale"),
			CalendarType:    v.GetString("calendarType"),
			ShowWeekNumbers: v.GetBool("showWeekNumbers"),
		},
	}, nil
}

type fileConfig struct {
	Path     string         `json:"path"`
	Defaults PickerDefaults `json:"defaults"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Picker() PickerDefaults {
	return f.Defaults
}
