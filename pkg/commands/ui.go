package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/runner/ui"
	"tableflip.dev/rangepick/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	so := &options.SaveOptions{}
	showEvents := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive picker",
		Example: `
rangepick ui
rangepick ui --min-detail=decade --max-detail=year --return=range
rangepick ui --value=2023-06-15 --save=launch
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			pc, err := po.Config(cmd, cfg.Picker())
			if err != nil {
				return err
			}
			i := ui.UI{Config: pc, SaveAs: so.Name, ShowEvents: showEvents}
			if so.Name != "" {
				if i.Persistence, err = store.Load(cfg); err != nil {
					return err
				}
			}
			return i.Do(cmd.Context())
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddSaveArg(cmd, so)
	cmd.Flags().BoolVar(&showEvents, "events", false, "Show the picker's event log.")

	topLevel.AddCommand(cmd)
}
