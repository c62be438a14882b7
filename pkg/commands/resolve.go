package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/runner/resolve"
	"tableflip.dev/rangepick/pkg/store"
)

func addResolve(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	ro := &options.ResolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "replay picker input without a terminal",
		Long: `Build a picker from flags and config, drill up --up times, then activate
each --click in order. Above the finest allowed view a click drills down; at the
finest view it commits the value.`,
		Example: `
rangepick resolve --view=decade --click=2024-01-01 --click=2024-05-01 --click=2024-05-17
rangepick resolve --value=2023-06-15 --up=2 --json
rangepick resolve --max-detail=year --return=range --click=2023-02-01
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			pc, err := po.Config(cmd, cfg.Picker())
			if err != nil {
				return output.HandleError(err)
			}
			clicks, err := ro.GetClicks()
			if err != nil {
				return output.HandleError(err)
			}
			r := resolve.Resolve{
				Config: pc,
				Up:     ro.Up,
				Clicks: clicks,
				Grid:   ro.Grid,
				JSON:   output.JSON,
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddResolveArgs(cmd, ro)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
