package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reconx/internal/services/probe"
)

// probe [file]: check URLs from a file (or stdin) for liveness.
func probeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [file]",
		Short: "Check URLs from a file or stdin for liveness",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var urls []string
			sc := bufio.NewScanner(in)
			for sc.Scan() {
				if line := strings.TrimSpace(sc.Text()); line != "" {
					urls = append(urls, line)
				}
			}
			if err := sc.Err(); err != nil {
				return err
			}
			urls = probe.Filter(urls)
			if len(urls) == 0 {
				return fmt.Errorf("no http(s) URLs to probe")
			}

			appCtx.UI.Infof("Checking %d URLs for liveness ...", len(urls))
			checks, err := appCtx.Prober.Check(cmd.Context(), urls)
			if err != nil {
				return err
			}

			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				enc := json.NewEncoder(f)
				enc.SetIndent("", "  ")
				return enc.Encode(checks)
			}
			for _, c := range checks {
				if c.Alive() {
					fmt.Printf("%d %s\n", c.Status, c.URL)
				} else {
					fmt.Printf("ERR %s (%s)\n", c.URL, c.Error)
				}
			}
			return nil
		},
	}
	return cmd
}
