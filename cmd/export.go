package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linemark/internal/domain"
	m "github.com/mouse-blink/linemark/internal/model"
)

const exportLongDescription = `Export marked lines without opening the editor.

Lines are given as comma separated numbers and inclusive ranges, e.g.
--in 4-6,9 --out 12. They are merged into the session given with --session,
if any. The payload is printed and copied to the clipboard unless --no-copy
is set.`

var exportFilenameFlag string
var exportInFlag string
var exportOutFlag string
var exportSessionFlag string
var exportFormatFlag string
var exportNoCopyFlag bool

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export line sets as a range-encoded payload",
		Long:  exportLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := domain.ParseFormat(exportFormatFlag)
			if err != nil {
				return err
			}

			return workflow.Export(cmd.Context(), domain.ExportArgs{
				Filename: exportFilenameFlag,
				In:       exportInFlag,
				Out:      exportOutFlag,
				Session:  m.Path(exportSessionFlag),
				Format:   format,
				Copy:     !exportNoCopyFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&exportFilenameFlag, "filename", "f", "", "filename written to the export")
	cmd.Flags().StringVar(&exportInFlag, "in", "", "lines marked in, e.g. 4-6,9")
	cmd.Flags().StringVar(&exportOutFlag, "out", "", "lines marked out, e.g. 12")
	cmd.Flags().StringVar(&exportSessionFlag, "session", "", "session file to start from")
	cmd.Flags().StringVar(&exportFormatFlag, "format", string(domain.FormatTemplate), "export format: template or json")
	cmd.Flags().BoolVar(&exportNoCopyFlag, "no-copy", false, "print the payload without copying it")

	return cmd
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
