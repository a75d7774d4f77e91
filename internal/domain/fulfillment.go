package domain

import "slices"

// IntentDefaultWelcome is the only intent this fulfillment answers.
const IntentDefaultWelcome = "Default Welcome Intent"

// CapabilityScreenOutput is declared by surfaces that can render cards.
const CapabilityScreenOutput = "actions.capability.SCREEN_OUTPUT"

// Capabilities is the set of features the requesting surface declared.
type Capabilities []string

// Has reports whether the named capability was declared.
func (c Capabilities) Has(name string) bool {
	return slices.Contains(c, name)
}

// HasScreen reports whether the surface can display a visual card.
func (c Capabilities) HasScreen() bool {
	return c.Has(CapabilityScreenOutput)
}

// FulfillmentRequest is the platform-neutral view of an inbound webhook call.
type FulfillmentRequest struct {
	// Intent is the display name of the matched intent.
	Intent string

	// Locale is the BCP 47 tag of the user's language, possibly empty.
	Locale string

	// Session identifies the conversation, used for logging only.
	Session string

	// Capabilities are the surface capabilities declared by the client.
	Capabilities Capabilities
}

// Reply is the platform-neutral response produced for a request.
type Reply struct {
	// Speech is rendered by text-to-speech.
	Speech string

	// DisplayText is shown on surfaces with a screen.
	DisplayText string

	// Card is set only when the surface declared screen output.
	Card *Card

	// EndConversation closes the conversation after this reply.
	EndConversation bool
}

// Card is a visual card with a title, body text and a background image.
type Card struct {
	Title    string
	Body     string
	ImageURL string
	ImageAlt string
}
