package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// history: list past scans.
func historyCmd() *cobra.Command {
	var (
		limit int
		keep  int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past scans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keep >= 0 {
				if err := appCtx.History.Prune(cmd.Context(), keep); err != nil {
					return err
				}
				appCtx.UI.Successf("History pruned to %d entries", keep)
				return nil
			}

			rows, err := appCtx.History.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("no scans recorded")
				return nil
			}
			for _, s := range rows {
				fmt.Printf("%s  %-30s wayback=%-5d live=%-5d fuzz=%-4d %s\n",
					s.StartedAt.Format("2006-01-02 15:04"),
					s.Domain, s.WaybackN, s.LiveN, s.FuzzN, s.ReportPath)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "max entries to list")
	cmd.Flags().IntVar(&keep, "prune", -1, "prune history down to N entries instead of listing")
	return cmd
}
