package domain

import "fmt"

// Messages holds the localized prompt templates for one language.
//
// Attribution templates take the author as the first argument and the quote as
// the second, using explicit argument indexes (%[1]s, %[2]s) so translations
// can reorder them.
type Messages struct {
	// Problem is spoken when the quote cannot be produced.
	Problem string

	// LongAttribution is the spoken form, e.g. "%[1]s once said: %[2]s".
	LongAttribution string

	// ShortAttribution is the card title, e.g. "Quote by %[1]s".
	ShortAttribution string

	// AccessibilityText describes the card image.
	AccessibilityText string
}

// Long renders the spoken attribution.
func (m Messages) Long(author, quote string) string {
	return fmt.Sprintf(m.LongAttribution, author, quote)
}

// Short renders the card title.
func (m Messages) Short(author string) string {
	return fmt.Sprintf(m.ShortAttribution, author)
}
