package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reconx/internal/services/fuzz"
)

// fuzz <base-url>: wordlist path brute force.
func fuzzCmd() *cobra.Command {
	var wordlist string
	cmd := &cobra.Command{
		Use:   "fuzz <base-url>",
		Short: "Brute-force paths from a wordlist against a base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := fuzz.LoadWordlist(wordlist)
			if err != nil {
				return err
			}
			appCtx.UI.Infof("Fuzzing %s with %d paths ...", args[0], len(words))

			hits, err := appCtx.Fuzzer.Run(cmd.Context(), args[0], words)
			if err != nil {
				return err
			}
			for _, h := range hits {
				fmt.Printf("%d %8d  %s\n", h.Status, h.Size, h.URL)
			}
			appCtx.UI.Successf("%d hits", len(hits))
			return nil
		},
	}
	cmd.Flags().StringVarP(&wordlist, "wordlist", "w", "", "wordlist file, one path per line")
	_ = cmd.MarkFlagRequired("wordlist")
	return cmd
}
