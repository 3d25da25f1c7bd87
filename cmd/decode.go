package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linemark/internal/domain"
)

// decodeCmd represents the decode command.
var decodeCmd = newDecodeCmd()

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [payload]",
		Short: "Show the lines contained in an exported payload",
		Long:  "Decode an exported payload back into its line sets. The payload is read from stdin when omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload string

			if len(args) == 1 && args[0] != "-" {
				payload = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read payload: %w", err)
				}

				payload = string(data)
			}

			return workflow.Decode(domain.DecodeArgs{Payload: payload})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
