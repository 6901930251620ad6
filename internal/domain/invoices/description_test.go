package invoices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDescription_LegacyText(t *testing.T) {
	d := DecodeDescription("Website development and design services")
	assert.False(t, d.IsStructured())
	assert.Equal(t, "Website development and design services", d.Text())
	assert.Empty(t, d.LineItems)
}

func TestDecodeDescription_Structured(t *testing.T) {
	raw := `{"line_items":[{"description":"Design","quantity":2,"rate":500,"amount":1000},{"description":"Hosting","quantity":1,"rate":200,"amount":200}],"tax_rate":18,"notes":"Net 30"}`

	d := DecodeDescription(raw)
	require.True(t, d.IsStructured())
	require.Len(t, d.LineItems, 2)
	assert.Equal(t, "Design", d.LineItems[0].Description)
	assert.Equal(t, 18.0, d.TaxRate)
	assert.Equal(t, "Net 30", d.Notes)
	assert.Equal(t, int64(120000), d.SubtotalMinor())
}

func TestDecodeDescription_MalformedJSONIsLegacy(t *testing.T) {
	// Braces without line_items must fall back to plain text, not error
	for _, raw := range []string{"{not json", "{}", `{"notes":"only notes"}`} {
		d := DecodeDescription(raw)
		assert.False(t, d.IsStructured(), "input %q", raw)
		assert.Equal(t, raw, d.Text())
	}
}

func TestDescription_EncodeRoundTrip(t *testing.T) {
	original := StructuredDescription([]LineItem{
		{Description: "Consulting", Quantity: 10, Rate: 150, Amount: 1500},
	}, 12.5, "thanks")

	encoded, err := original.Encode()
	require.NoError(t, err)

	decoded := DecodeDescription(encoded)
	require.True(t, decoded.IsStructured())
	assert.Equal(t, original.LineItems, decoded.LineItems)
	assert.Equal(t, original.TaxRate, decoded.TaxRate)
	assert.Equal(t, original.Notes, decoded.Notes)
}

func TestDescription_EncodeLegacyPassthrough(t *testing.T) {
	encoded, err := LegacyDescription("Services rendered").Encode()
	require.NoError(t, err)
	assert.Equal(t, "Services rendered", encoded)
}
