package invoices

import (
	"encoding/json"
	"strings"
)

// LineItem is a single billed line on a structured invoice
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Description is the tagged union behind the invoice description column.
// Legacy rows hold plain text; newer rows hold a JSON document with line
// items, a tax rate, and notes. It is decoded exactly once at read time.
type Description struct {
	structured bool
	text       string
	LineItems  []LineItem
	TaxRate    float64
	Notes      string
}

// structuredPayload mirrors the stored JSON document.
type structuredPayload struct {
	LineItems []LineItem `json:"line_items"`
	TaxRate   float64    `json:"tax_rate"`
	Notes     string     `json:"notes,omitempty"`
}

// LegacyDescription wraps plain text as a Description.
func LegacyDescription(text string) Description {
	return Description{text: text}
}

// StructuredDescription builds a Description from line items.
func StructuredDescription(items []LineItem, taxRate float64, notes string) Description {
	return Description{
		structured: true,
		LineItems:  items,
		TaxRate:    taxRate,
		Notes:      notes,
	}
}

// DecodeDescription parses a stored description column value. Anything
// that is not a JSON document carrying line_items is treated as legacy
// plain text, never as an error.
func DecodeDescription(raw string) Description {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return LegacyDescription(raw)
	}

	var payload structuredPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil || len(payload.LineItems) == 0 {
		return LegacyDescription(raw)
	}

	return StructuredDescription(payload.LineItems, payload.TaxRate, payload.Notes)
}

// Encode renders the description for storage: plain text for legacy
// values, the JSON document for structured ones.
func (d Description) Encode() (string, error) {
	if !d.structured {
		return d.text, nil
	}

	b, err := json.Marshal(structuredPayload{
		LineItems: d.LineItems,
		TaxRate:   d.TaxRate,
		Notes:     d.Notes,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IsStructured reports whether the description carries line items.
func (d Description) IsStructured() bool {
	return d.structured
}

// Text returns a display string: the plain text for legacy descriptions,
// or the first line item's description for structured ones.
func (d Description) Text() string {
	if !d.structured {
		return d.text
	}
	if len(d.LineItems) > 0 {
		return d.LineItems[0].Description
	}
	return ""
}

// SubtotalMinor sums line-item amounts in minor units. Line items carry
// major-unit floats as stored in the JSON payload.
func (d Description) SubtotalMinor() int64 {
	var subtotal int64
	for _, item := range d.LineItems {
		subtotal += int64(item.Amount*100 + 0.5)
	}
	return subtotal
}
