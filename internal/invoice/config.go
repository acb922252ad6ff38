package invoice

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fakturo-dev/fakturo/internal/money"
	"github.com/fakturo-dev/fakturo/internal/slug"
)

// Default returns the factory-default invoice, the one emitted by the
// example-config mode.
func Default() *Invoice {
	buyer := defaultParty()
	return &Invoice{
		SeriesStart:   1,
		PaymentMethod: "bank transfer",
		Seller:        defaultParty(),
		Buyer:         buyer,
		NumberPrefix:  slug.Prefix(buyer.Slug()),
		Items: []LineItem{
			{
				Name:         "software development services",
				Unit:         "pcs",
				Quantity:     money.MustParse("1.00"),
				UnitNetPrice: money.MustParse("2137.00"),
				TaxRate:      money.MustParse("0.23"),
			},
		},
		AmountPaid: money.MustParse("0.00"),
		Remarks:    "payable within 3 days",
		Currency:   "USD",
	}
}

func defaultParty() Party {
	return Party{
		Name:  "Acme Consulting",
		TaxID: "8911632619",
		BankAccount: &BankAccount{
			BankName: "First National",
			Number:   "21 2137 2137 2137 2137 2137 2137",
		},
		Address: Address{
			Line1: "21 Main Street, Suite 37",
			Line2: "21-370 Springfield",
		},
	}
}

// Parse deserializes a configuration into an Invoice, trying JSON first
// and falling back to YAML, then fills defaults for absent fields.
func Parse(data []byte) (*Invoice, error) {
	var inv Invoice
	if jsonErr := json.Unmarshal(data, &inv); jsonErr != nil {
		inv = Invoice{}
		if yamlErr := yaml.Unmarshal(data, &inv); yamlErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, yamlErr)
		}
	}
	inv.applyDefaults()
	return &inv, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Read parses a configuration from a stream (stdin mode).
func Read(r io.Reader) (*Invoice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// MarshalConfig serializes the invoice to the YAML config format.
func (inv *Invoice) MarshalConfig() ([]byte, error) {
	data, err := yaml.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// applyDefaults fills fields the configuration left absent.
func (inv *Invoice) applyDefaults() {
	if inv.SeriesStart == 0 {
		inv.SeriesStart = 1
	}
	if inv.NumberPrefix == "" {
		inv.NumberPrefix = slug.Prefix(inv.Buyer.Slug())
	}
	if inv.PaymentMethod == "" {
		inv.PaymentMethod = "bank transfer"
	}
	if inv.Currency == "" {
		inv.Currency = "USD"
	}
}
