package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/runner/remove"
	"tableflip.dev/rangepick/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	quiet := false
	cmd := &cobra.Command{
		Use:     "delete name",
		Aliases: []string{"rm"},
		Short:   "delete a saved selection",
		Example: `
rangepick delete launch
`,
		Args: cobra.ExactArgs(1),
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
				return err
			}
			s := remove.Remove{
				Name:        args[0],
				Quiet:       quiet,
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not list the remaining selections.")

	topLevel.AddCommand(cmd)
}
