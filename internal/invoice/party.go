package invoice

import "github.com/fakturo-dev/fakturo/internal/slug"

// BankAccount is a descriptive bank reference embedded in a Party.
type BankAccount struct {
	BankName string `json:"bank_name" yaml:"bank_name"`
	Number   string `json:"account_number" yaml:"account_number"`
}

// Address is two free-text lines.
type Address struct {
	Line1 string `json:"line_1" yaml:"line_1"`
	Line2 string `json:"line_2" yaml:"line_2"`
}

// Party is one side of the sale (seller or buyer). Treated as immutable
// once the invoice is constructed.
type Party struct {
	Name        string       `json:"name" yaml:"name"`
	TaxID       string       `json:"tax_id" yaml:"tax_id"`
	BankAccount *BankAccount `json:"bank_account,omitempty" yaml:"bank_account,omitempty"`
	Address     Address      `json:"address" yaml:"address"`
}

// Slug returns the normalized identifier for the party's name.
func (p Party) Slug() string {
	return slug.Make(p.Name)
}
