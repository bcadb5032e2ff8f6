package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reconx/internal/domain"
)

// links <domain>: extract homepage anchor hrefs.
func linksCmd() *cobra.Command {
	var max int
	cmd := &cobra.Command{
		Use:   "links <domain>",
		Short: "Extract anchor hrefs from a site's homepage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := domain.ParseTarget(args[0])
			if err != nil {
				return err
			}
			hrefs, err := appCtx.Links.Links(cmd.Context(), "https://"+target.String(), max)
			if err != nil {
				return err
			}
			for _, h := range hrefs {
				fmt.Println(h)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&max, "max", 200, "max links to extract")
	return cmd
}
