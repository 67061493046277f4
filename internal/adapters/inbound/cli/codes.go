package cli

import (
	"encoding/json"
	"fmt"

	"github.com/commentstyle/commentstyle/internal/adapters/outbound/tui"
	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/spf13/cobra"
)

func newCodesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List violation codes",
		Long:  "List every violation code with its message. Codes can be tolerated per rule with `allow`.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(domain.CodeTable())
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCodes())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
