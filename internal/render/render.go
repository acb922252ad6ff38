// Package render maps a fully-populated invoice onto the HTML document
// template. All formatting happens here, up front: the template receives
// only pre-computed display strings, so it has no logic beyond field
// substitution.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/fakturo-dev/fakturo/internal/buildinfo"
	"github.com/fakturo-dev/fakturo/internal/invoice"
	"github.com/fakturo-dev/fakturo/internal/money"
)

//go:embed invoice.html.tmpl
var templateFS embed.FS

var documentTemplate = template.Must(template.ParseFS(templateFS, "invoice.html.tmpl"))

// Placeholder is rendered wherever a derived amount has no value.
const Placeholder = "—"

// View is the deterministic, pre-formatted input handed to the template.
type View struct {
	Number        string
	IssueDate     string
	SaleDate      string
	DueDate       string
	Seller        PartyView
	Buyer         PartyView
	Items         []ItemView
	TotalNet      string
	TotalVAT      string
	TotalGross    string
	AmountPaid    string
	AmountDue     string
	PaymentMethod string
	Remarks       string
	Currency      string
	Generator     string
}

// PartyView is the display form of a seller or buyer.
type PartyView struct {
	Name          string
	TaxID         string
	BankName      string
	AccountNumber string
	HasBank       bool
	AddressLine1  string
	AddressLine2  string
}

// ItemView is the display form of one line item.
type ItemView struct {
	Name         string
	Unit         string
	Quantity     string
	UnitNetPrice string
	NetValue     string
	TaxRate      string
	VATAmount    string
	GrossValue   string
}

// NewView computes every display field from the invoice. Fails when the
// invoice has no line items or a tax rate cannot be formatted.
func NewView(inv *invoice.Invoice) (View, error) {
	if len(inv.Items) == 0 {
		return View{}, fmt.Errorf("rendering: %w", invoice.ErrMissingLineItems)
	}

	items := make([]ItemView, 0, len(inv.Items))
	for _, li := range inv.Items {
		rate, err := money.FormatPercent(li.TaxRate.Decimal)
		if err != nil {
			return View{}, fmt.Errorf("rendering tax rate for %q: %w", li.Name, err)
		}
		items = append(items, ItemView{
			Name:         li.Name,
			Unit:         li.Unit,
			Quantity:     li.Quantity.String(),
			UnitNetPrice: money.FormatCurrency(li.UnitNetPrice.Decimal),
			NetValue:     money.FormatCurrency(li.NetValue()),
			TaxRate:      rate,
			VATAmount:    formatValue(li.VATAmount()),
			GrossValue:   formatValue(li.GrossValue()),
		})
	}

	dateFormat := "2006-01-02"
	return View{
		Number:        inv.NumberString(),
		IssueDate:     inv.IssueDate().Format(dateFormat),
		SaleDate:      inv.SaleDate().Format(dateFormat),
		DueDate:       inv.DueDate().Format(dateFormat),
		Seller:        newPartyView(inv.Seller),
		Buyer:         newPartyView(inv.Buyer),
		Items:         items,
		TotalNet:      formatValue(inv.TotalNet()),
		TotalVAT:      formatValue(inv.TotalVAT()),
		TotalGross:    formatValue(inv.TotalGross()),
		AmountPaid:    money.FormatCurrency(inv.AmountPaid.Decimal),
		AmountDue:     formatValue(inv.AmountDue()),
		PaymentMethod: inv.PaymentMethod,
		Remarks:       inv.Remarks,
		Currency:      inv.Currency,
		Generator:     fmt.Sprintf("github.com/fakturo-dev/fakturo (version %s)", buildinfo.Version),
	}, nil
}

func newPartyView(p invoice.Party) PartyView {
	view := PartyView{
		Name:         p.Name,
		TaxID:        p.TaxID,
		AddressLine1: p.Address.Line1,
		AddressLine2: p.Address.Line2,
	}
	if p.BankAccount != nil {
		view.HasBank = true
		view.BankName = p.BankAccount.BankName
		view.AccountNumber = p.BankAccount.Number
	}
	return view
}

// formatValue renders a present amount as currency and an absent one as
// the explicit placeholder, never as zero.
func formatValue(v money.Value) string {
	if !v.Valid {
		return Placeholder
	}
	return money.FormatCurrency(v.Decimal)
}

// Render produces the final HTML document for the invoice.
func Render(inv *invoice.Invoice) ([]byte, error) {
	view, err := NewView(inv)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("executing invoice template: %w", err)
	}
	return buf.Bytes(), nil
}
