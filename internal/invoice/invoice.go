// Package invoice holds the invoice aggregate: the data describing one
// sale and every value derivable from it. Derived quantities are never
// stored; they are recomputed from the fields on each call.
package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo-dev/fakturo/internal/money"
	"github.com/fakturo-dev/fakturo/internal/slug"
)

const dateFormat = "2006-01-02"

// Invoice is the root aggregate for one sale document.
type Invoice struct {
	// NameOverride replaces the derived seller-buyer slug when set.
	NameOverride *string `json:"name_override,omitempty" yaml:"name_override,omitempty"`
	// SeriesStart is the first number of the invoice series.
	SeriesStart uint64 `json:"series_start" yaml:"series_start"`
	// Number is the assigned sequence number, filled in during numbering.
	Number        *uint64       `json:"number,omitempty" yaml:"number,omitempty"`
	PaymentMethod string        `json:"payment_method" yaml:"payment_method"`
	Seller        Party         `json:"seller" yaml:"seller"`
	Buyer         Party         `json:"buyer" yaml:"buyer"`
	NumberPrefix  string        `json:"number_prefix" yaml:"number_prefix"`
	Items         []LineItem    `json:"items" yaml:"items"`
	AmountPaid    money.Decimal `json:"amount_paid" yaml:"amount_paid"`
	Remarks       string        `json:"remarks" yaml:"remarks"`
	Currency      string        `json:"currency" yaml:"currency"`
	// StrictTotals switches total aggregation from best-effort (items
	// whose VAT or gross overflowed are skipped) to fail-fast (any
	// overflowed item makes the whole total absent).
	StrictTotals bool `json:"strict_totals,omitempty" yaml:"strict_totals,omitempty"`

	now func() time.Time
}

// WithClock replaces the time source used for date derivations.
func (inv *Invoice) WithClock(now func() time.Time) *Invoice {
	inv.now = now
	return inv
}

func (inv *Invoice) clock() time.Time {
	if inv.now != nil {
		return inv.now()
	}
	return time.Now()
}

// IssueDate is the local calendar date the invoice is issued.
func (inv *Invoice) IssueDate() time.Time {
	t := inv.clock()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SaleDate equals the issue date.
func (inv *Invoice) SaleDate() time.Time {
	return inv.IssueDate()
}

// DueDate is three days after the issue date.
func (inv *Invoice) DueDate() time.Time {
	return inv.IssueDate().AddDate(0, 0, 3)
}

// NumberString is "{prefix}_{n}": n is the assigned number, or the
// numeric issue month when no number has been assigned yet.
func (inv *Invoice) NumberString() string {
	n := uint64(inv.IssueDate().Month())
	if inv.Number != nil {
		n = *inv.Number
	}
	return slug.FormatNumber(inv.NumberPrefix, n)
}

// Slug is the name override if present, else "{seller-slug}-{buyer-slug}".
func (inv *Invoice) Slug() string {
	if inv.NameOverride != nil {
		return *inv.NameOverride
	}
	return inv.Seller.Slug() + "-" + inv.Buyer.Slug()
}

// Filename is "{slug}-{number-string}--{issue-date}.html".
func (inv *Invoice) Filename() string {
	return fmt.Sprintf("%s-%s--%s.html", inv.Slug(), inv.NumberString(), inv.IssueDate().Format(dateFormat))
}

// TotalNet sums every item's net value. None for an empty item list.
func (inv *Invoice) TotalNet() money.Value {
	if len(inv.Items) == 0 {
		return money.None()
	}
	sum := decimal.Zero
	for _, li := range inv.Items {
		sum = sum.Add(li.NetValue())
	}
	return money.Some(sum)
}

// TotalVAT sums the per-item VAT amounts. In the default best-effort
// mode items whose VAT overflowed are skipped; in strict mode any
// overflow makes the total absent. None if nothing contributes.
func (inv *Invoice) TotalVAT() money.Value {
	return inv.sumItems(LineItem.VATAmount)
}

// TotalGross sums the per-item gross values under the same aggregation
// mode as TotalVAT.
func (inv *Invoice) TotalGross() money.Value {
	return inv.sumItems(LineItem.GrossValue)
}

func (inv *Invoice) sumItems(derive func(LineItem) money.Value) money.Value {
	sum := decimal.Zero
	present := false
	for _, li := range inv.Items {
		v := derive(li)
		if !v.Valid {
			if inv.StrictTotals {
				return money.None()
			}
			continue
		}
		sum = sum.Add(v.Decimal)
		present = true
	}
	if !present {
		return money.None()
	}
	return money.Some(sum)
}

// AmountDue is the gross total minus the amount already paid. None when
// the gross total is absent.
func (inv *Invoice) AmountDue() money.Value {
	gross := inv.TotalGross()
	if !gross.Valid {
		return money.None()
	}
	return money.Some(gross.Decimal.Sub(inv.AmountPaid.Decimal))
}

// OverrideNetPrice replaces the first line item's unit net price.
func (inv *Invoice) OverrideNetPrice(price decimal.Decimal) error {
	if len(inv.Items) == 0 {
		return fmt.Errorf("overriding net price: %w", ErrMissingLineItems)
	}
	inv.Items[0].UnitNetPrice = money.New(price)
	return nil
}

// OverridePaid sets the amount already paid after validating it does
// not exceed the net total. The invoice is left unchanged on failure.
func (inv *Invoice) OverridePaid(paid decimal.Decimal) error {
	total := inv.TotalNet()
	if !total.Valid {
		return fmt.Errorf("overriding paid amount: %w", ErrMissingLineItems)
	}
	if paid.GreaterThan(total.Decimal) {
		return fmt.Errorf("paid %s exceeds net total %s: %w",
			money.FormatCurrency(paid), money.FormatCurrency(total.Decimal), ErrPaymentExceedsTotal)
	}
	inv.AmountPaid = money.New(paid)
	return nil
}

// OverrideRemarks replaces the free-text remarks unconditionally.
func (inv *Invoice) OverrideRemarks(remarks string) {
	inv.Remarks = remarks
}

// AssignNumber records the sequence number chosen by the resolver.
func (inv *Invoice) AssignNumber(n uint64) {
	inv.Number = &n
}
