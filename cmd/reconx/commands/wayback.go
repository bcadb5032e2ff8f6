package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"reconx/internal/domain"
	"reconx/internal/services/wayback"
	"reconx/internal/toolrunner"
)

// wayback <domain>: collect archived URLs.
func waybackCmd() *cobra.Command {
	var (
		useBinary bool
		limit     int
	)
	cmd := &cobra.Command{
		Use:   "wayback <domain>",
		Short: "Collect archived URLs from the Wayback Machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := domain.ParseTarget(args[0])
			if err != nil {
				return err
			}

			var urls []string
			if useBinary {
				res, err := appCtx.Runner.Run(cmd.Context(), "waybackurls", target.String())
				switch {
				case errors.Is(err, toolrunner.ErrNotFound), errors.Is(err, toolrunner.ErrTimeout):
					appCtx.UI.Warnf("waybackurls unavailable (%v), falling back to CDX API", err)
				case err != nil:
					return err
				default:
					urls = wayback.Dedupe(wayback.FromTool(res), limit)
				}
			}
			if len(urls) == 0 {
				urls, err = appCtx.Archive.URLs(cmd.Context(), target, limit)
				if err != nil {
					return err
				}
			}

			for _, u := range urls {
				fmt.Println(u)
			}
			appCtx.UI.Successf("Collected %d URLs", len(urls))
			return nil
		},
	}
	cmd.Flags().BoolVar(&useBinary, "use-binary", false, "prefer a local waybackurls binary")
	cmd.Flags().IntVar(&limit, "max", 500, "max URLs to collect")
	return cmd
}
