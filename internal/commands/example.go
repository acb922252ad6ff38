package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakturo-dev/fakturo/internal/invoice"
)

func newExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example invoice config as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := invoice.Default().MarshalConfig()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
