package commands

import (
	"github.com/spf13/cobra"

	"github.com/punchcli/punch/internal/watson"
)

func newImportCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import frames from a watson export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := watson.DecodeFile(args[0])
			if err != nil {
				return err
			}

			app, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			n, err := app.ledger.Import(cmd.Context(), frames)
			if err != nil {
				return err
			}

			app.out.Imported(n)
			return nil
		},
	}
}
