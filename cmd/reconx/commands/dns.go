package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reconx/internal/domain"
)

// dns <domain>: enumerate common record types.
func dnsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dns <domain>",
		Short: "Enumerate common DNS record types for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := domain.ParseTarget(args[0])
			if err != nil {
				return err
			}
			records, err := appCtx.Resolver.Enumerate(cmd.Context(), target)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(records)
			}
			for _, rtype := range domain.RecordTypes {
				for _, v := range records[rtype] {
					fmt.Printf("%-6s %s\n", rtype, v)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")
	return cmd
}
