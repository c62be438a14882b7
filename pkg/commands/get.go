package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/runner/get"
	"tableflip.dev/rangepick/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get [name]",
		Short: "list saved selections",
		Example: `
rangepick get
rangepick get launch --json
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return selectionCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			s := get.Get{
				JSON:        output.JSON,
				Persistence: p,
			}
			if len(args) > 0 {
				s.Name = args[0]
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
