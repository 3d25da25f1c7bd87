package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linemark/internal/domain"
	m "github.com/mouse-blink/linemark/internal/model"
)

var showParallelFlag int

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <session files...>",
		Short: "Show saved annotation sessions",
		Long:  "Load saved session files and print their marked lines and encoded ranges.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := make([]m.Path, 0, len(args))
			for _, arg := range args {
				sessions = append(sessions, m.Path(arg))
			}

			return workflow.Show(cmd.Context(), domain.ShowArgs{
				Sessions: sessions,
				Parallel: showParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&showParallelFlag, "parallel", "p", 4, "number of session files loaded in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}
