package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/fakturo-dev/fakturo/internal/money"
)

// LineItem is a single sold item or service.
type LineItem struct {
	Name         string        `json:"name" yaml:"name"`
	Unit         string        `json:"unit" yaml:"unit"`
	Quantity     money.Decimal `json:"quantity" yaml:"quantity"`
	UnitNetPrice money.Decimal `json:"unit_net_price" yaml:"unit_net_price"`
	TaxRate      money.Decimal `json:"tax_rate" yaml:"tax_rate"` // decimal fraction, 0.23 = 23%
}

// NetValue returns the item's net value.
//
// Quantity is deliberately not multiplied in: this matches the issuing
// behavior the tool replicates. If that ever changes, this method is
// the only place to touch.
func (li LineItem) NetValue() decimal.Decimal {
	return li.UnitNetPrice.Decimal
}

// VATAmount returns net value x tax rate, or None on overflow.
func (li LineItem) VATAmount() money.Value {
	return money.CheckedMul(li.NetValue(), li.TaxRate.Decimal)
}

// GrossValue returns net value + VAT amount. None if the VAT amount is
// absent or the addition overflows.
func (li LineItem) GrossValue() money.Value {
	vat := li.VATAmount()
	if !vat.Valid {
		return money.None()
	}
	return money.CheckedAdd(li.NetValue(), vat.Decimal)
}
