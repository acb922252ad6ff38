package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakturo-dev/fakturo/internal/series"
)

func newListCommand() *cobra.Command {
	var outDir string
	var slugPrefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices already issued into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := series.NewResolver(outDir)
			if err != nil {
				return err
			}
			names, err := resolver.Issued(slugPrefix)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d invoice(s)\n", len(names))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory holding issued invoices (required)")
	_ = cmd.MarkFlagRequired("out")
	cmd.Flags().StringVar(&slugPrefix, "slug", "", "only list invoices whose name starts with this slug")

	return cmd
}
