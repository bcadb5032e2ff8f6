package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"reconx/internal/app"
)

var (
	home        string
	resolver    string
	timeout     time.Duration
	dnsTimeout  time.Duration
	toolTimeout time.Duration
	concurrency int
	ratePerSec  float64
	userAgent   string
	outPath     string
	quiet       bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "reconx",
		Short:         "Recon automation: DNS, Wayback URLs, liveness checks, directory fuzzing",
		SilenceUsage: true,
		// Errors are printed once, by main, through the ui printer.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".reconx")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			wire, err := app.NewWire(app.Config{
				Home:        home,
				Resolver:    resolver,
				Timeout:     timeout,
				DNSTimeout:  dnsTimeout,
				ToolTimeout: toolTimeout,
				Concurrency: concurrency,
				RatePerSec:  ratePerSec,
				UserAgent:   userAgent,
				Quiet:       quiet,
			})
			if err != nil {
				return err
			}
			appCtx = wire
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil {
				return appCtx.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "tool dir (default ~/.reconx)")
	root.PersistentFlags().StringVar(&resolver, "resolver", "", "DNS server host:53 (default from resolv.conf)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "per-request timeout")
	root.PersistentFlags().DurationVar(&dnsTimeout, "dns-timeout", 5*time.Second, "per-DNS-query timeout")
	root.PersistentFlags().DurationVar(&toolTimeout, "tool-timeout", 60*time.Second, "external tool timeout")
	root.PersistentFlags().IntVarP(&concurrency, "concurrency", "c", 25, "concurrent requests")
	root.PersistentFlags().Float64Var(&ratePerSec, "rate", 0, "max outbound requests per second (0 = unlimited)")
	root.PersistentFlags().StringVar(&userAgent, "user-agent", app.DefaultUserAgent, "User-Agent header")
	root.PersistentFlags().StringVarP(&outPath, "out", "o", "", "output file for results")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	root.AddCommand(dnsCmd(), waybackCmd(), probeCmd(), fuzzCmd(), linksCmd(), scanCmd(), historyCmd())
	return root.Execute()
}
