package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Acme Bob", "acme-bob"},
		{"  Foo   BAR baz ", "foo-bar-baz"},
		{"single", "single"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.name), "Make(%q)", tt.name)
	}
}

func TestMakeStableAcrossCaseAndSpacing(t *testing.T) {
	assert.Equal(t, Make("Acme Bob"), Make("ACME   bob"))
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"acme-bob", "ACM"},
		{"ab", "AB"},
		{"", ""},
		{"żółć", "ŻÓŁ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Prefix(tt.slug), "Prefix(%q)", tt.slug)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "ACM_4", FormatNumber("ACM", 4))
	assert.Equal(t, "XY_12", FormatNumber("XY", 12))
}
