package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fakturo-dev/fakturo/internal/gitops"
	"github.com/fakturo-dev/fakturo/internal/invoice"
	"github.com/fakturo-dev/fakturo/internal/issuelog"
	"github.com/fakturo-dev/fakturo/internal/logger"
	"github.com/fakturo-dev/fakturo/internal/money"
	"github.com/fakturo-dev/fakturo/internal/render"
	"github.com/fakturo-dev/fakturo/internal/series"
)

// generateOptions carries the override flags of the generate command.
type generateOptions struct {
	netPrice   string
	paid       string
	comment    string
	commentSet bool
	commit     bool
}

func newGenerateCommand() *cobra.Command {
	var configPath string
	var useStdin bool
	var outDir string
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render an invoice from a JSON or YAML config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if useStdin == (configPath != "") {
				return errors.New("exactly one of --config and --stdin is required")
			}

			var inv *invoice.Invoice
			var err error
			if useStdin {
				inv, err = invoice.Read(cmd.InOrStdin())
			} else {
				inv, err = invoice.Load(configPath)
			}
			if err != nil {
				return err
			}

			opts.commentSet = cmd.Flags().Changed("comment")
			return runGenerate(cmd.OutOrStdout(), inv, outDir, opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "p", "", "path to the invoice config file (JSON or YAML)")
	cmd.Flags().BoolVarP(&useStdin, "stdin", "s", false, "read the config from standard input")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory the invoice is written to (required)")
	_ = cmd.MarkFlagRequired("out")
	cmd.Flags().StringVarP(&opts.netPrice, "net-price", "c", "", "override the first item's unit net price, e.g. '2137.99'")
	cmd.Flags().StringVar(&opts.paid, "paid", "", "override the amount already paid (requires --net-price)")
	cmd.Flags().StringVar(&opts.comment, "comment", "", "override the invoice remarks")
	cmd.Flags().BoolVar(&opts.commit, "commit", false, "git-commit the invoice when the output dir is a repository")

	return cmd
}

// runGenerate drives the whole issue flow: overrides, numbering,
// rendering, the exclusive write, and the audit trail. On success the
// canonical path of the new document is the only line written to out.
func runGenerate(out io.Writer, inv *invoice.Invoice, outDir string, opts generateOptions) error {
	log := logger.WithComponent("generate")

	if err := applyOverrides(inv, opts); err != nil {
		return err
	}

	resolver, err := series.NewResolver(outDir)
	if err != nil {
		return err
	}

	number, err := resolver.NextNumber(inv.Slug(), inv.SeriesStart)
	if err != nil {
		return err
	}
	inv.AssignNumber(number)
	log.Debug().Uint64("number", number).Str("slug", inv.Slug()).Msg("assigned invoice number")

	doc, err := render.Render(inv)
	if err != nil {
		return err
	}

	path, err := resolver.Write(inv.Filename(), doc)
	if err != nil {
		return err
	}

	entry := issuelog.Entry{
		Timestamp:  inv.IssueDate(),
		Number:     inv.NumberString(),
		Filename:   inv.Filename(),
		TotalGross: render.Placeholder,
		Currency:   inv.Currency,
	}
	if gross := inv.TotalGross(); gross.Valid {
		entry.TotalGross = money.FormatCurrency(gross.Decimal)
	}
	if err := issuelog.Append(resolver.Dir(), entry); err != nil {
		log.Warn().Err(err).Msg("could not append to issue log")
	}

	if opts.commit {
		if !gitops.IsRepo(resolver.Dir()) {
			log.Warn().Str("dir", resolver.Dir()).Msg("--commit ignored: not a git repository")
		} else {
			hash, err := gitops.CommitPaths(resolver.Dir(), "invoice: "+inv.Filename(), inv.Filename())
			if err != nil {
				return fmt.Errorf("committing invoice: %w", err)
			}
			log.Info().Str("commit", hash).Msg("committed invoice")
		}
	}

	fmt.Fprintln(out, path)
	return nil
}

func applyOverrides(inv *invoice.Invoice, opts generateOptions) error {
	if opts.paid != "" && opts.netPrice == "" {
		return errors.New("--paid requires --net-price")
	}

	if opts.netPrice != "" {
		price, err := decimal.NewFromString(opts.netPrice)
		if err != nil {
			return fmt.Errorf("invalid --net-price %q: %w", opts.netPrice, err)
		}
		if err := inv.OverrideNetPrice(price); err != nil {
			return err
		}

		if opts.paid != "" {
			paid, err := decimal.NewFromString(opts.paid)
			if err != nil {
				return fmt.Errorf("invalid --paid %q: %w", opts.paid, err)
			}
			if err := inv.OverridePaid(paid); err != nil {
				return err
			}
		}
	}

	if opts.commentSet {
		inv.OverrideRemarks(opts.comment)
	}

	return nil
}
