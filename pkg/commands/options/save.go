package options

import (
	"github.com/spf13/cobra"
)

// SaveOptions
type SaveOptions struct {
	Name string
}

func AddSaveArg(cmd *cobra.Command, o *SaveOptions) {
	cmd.Flags().StringVar(&o.Name, "save", "",
		"Save the committed value under this name.")
}
