package commands

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"reconx/internal/domain"
	"reconx/internal/report"
	"reconx/internal/services/fuzz"
	"reconx/internal/services/scan"
)

// scan <domain>: the full pipeline, report written to --out.
func scanCmd() *cobra.Command {
	var (
		runDig       bool
		useBinary    bool
		maxWayback   int
		maxLinks     int
		fuzzWordlist string
	)
	cmd := &cobra.Command{
		Use:   "scan <domain>",
		Short: "Run the full recon pipeline and write a JSON report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := domain.ParseTarget(args[0])
			if err != nil {
				return err
			}

			r, err := appCtx.Pipeline().Run(cmd.Context(), target, scan.Options{
				RunDig:           runDig,
				UseWaybackBinary: useBinary,
				MaxWayback:       maxWayback,
				MaxLinks:         maxLinks,
			})
			if err != nil {
				return err
			}

			if fuzzWordlist != "" {
				words, err := fuzz.LoadWordlist(fuzzWordlist)
				if err != nil {
					return err
				}
				appCtx.UI.Infof("Fuzzing https://%s with %d paths ...", target, len(words))
				hits, err := appCtx.Fuzzer.Run(cmd.Context(), "https://"+target.String(), words)
				if err != nil {
					r.AddError("fuzz", err)
				} else {
					r.FuzzHits = hits
				}
			}

			path := outPath
			if path == "" {
				path = report.DefaultPath
			}
			if err := appCtx.Reports.Write(path, r); err != nil {
				return err
			}
			appCtx.UI.Successf("Results written to %s", path)

			live := 0
			for _, c := range r.WaybackCheck {
				if c.Alive() {
					live++
				}
			}
			if err := appCtx.History.Record(cmd.Context(), domain.Summary{
				ID:         uuid.NewString(),
				Domain:     target.String(),
				StartedAt:  r.StartedAt,
				FinishedAt: time.Now().UTC(),
				WaybackN:   len(r.Wayback),
				LiveN:      live,
				FuzzN:      len(r.FuzzHits),
				ReportPath: path,
			}); err != nil {
				appCtx.UI.Warnf("could not record scan history: %v", err)
			}

			for _, msg := range r.Errors {
				appCtx.UI.Warnf("stage failed: %s", msg)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&runDig, "run-dig", false, "also run dig +short for troubleshooting output")
	cmd.Flags().BoolVar(&useBinary, "use-wayback-bin", false, "prefer a local waybackurls binary over the CDX API")
	cmd.Flags().IntVar(&maxWayback, "max-wayback", 500, "max wayback URLs to consider")
	cmd.Flags().IntVar(&maxLinks, "max-links", 200, "max homepage links to record")
	cmd.Flags().StringVarP(&fuzzWordlist, "fuzz-wordlist", "w", "", "also fuzz the homepage with this wordlist")
	return cmd
}
