package dto

import (
	"github.com/jsamuelsen/quote-fulfillment/internal/domain"
)

// WebhookRequest is the subset of the Dialogflow v2 WebhookRequest the
// fulfillment reads. Unknown fields are ignored.
type WebhookRequest struct {
	ResponseID                  string                      `json:"responseId"`
	Session                     string                      `json:"session"`
	QueryResult                 QueryResult                 `json:"queryResult" validate:"required"`
	OriginalDetectIntentRequest OriginalDetectIntentRequest `json:"originalDetectIntentRequest"`
}

// QueryResult carries the matched intent and the detected language.
type QueryResult struct {
	QueryText    string `json:"queryText"`
	LanguageCode string `json:"languageCode"`
	Intent       Intent `json:"intent" validate:"required"`
}

// Intent identifies the matched intent by display name.
type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName" validate:"required,notblank"`
}

// OriginalDetectIntentRequest wraps the Actions on Google request.
type OriginalDetectIntentRequest struct {
	Source  string              `json:"source"`
	Version string              `json:"version"`
	Payload AssistantAppRequest `json:"payload"`
}

// AssistantAppRequest is the Actions on Google conversation request.
type AssistantAppRequest struct {
	User    AssistantUser    `json:"user"`
	Surface AssistantSurface `json:"surface"`
}

// AssistantUser carries the user's locale.
type AssistantUser struct {
	Locale string `json:"locale"`
}

// AssistantSurface lists the capabilities of the requesting device.
type AssistantSurface struct {
	Capabilities []Capability `json:"capabilities"`
}

// Capability is a single declared surface capability.
type Capability struct {
	Name string `json:"name"`
}

// ToFulfillmentRequest converts the webhook payload to the domain request.
// The user locale wins over queryResult.languageCode.
func (r *WebhookRequest) ToFulfillmentRequest() domain.FulfillmentRequest {
	payload := r.OriginalDetectIntentRequest.Payload

	locale := payload.User.Locale
	if locale == "" {
		locale = r.QueryResult.LanguageCode
	}

	var caps domain.Capabilities
	for _, c := range payload.Surface.Capabilities {
		if c.Name != "" {
			caps = append(caps, c.Name)
		}
	}

	return domain.FulfillmentRequest{
		Intent:       r.QueryResult.Intent.DisplayName,
		Locale:       locale,
		Session:      r.Session,
		Capabilities: caps,
	}
}

// WebhookResponse is the Dialogflow v2 WebhookResponse with an Actions on
// Google rich response payload.
type WebhookResponse struct {
	FulfillmentText string          `json:"fulfillmentText"`
	Payload         ResponsePayload `json:"payload"`
}

// ResponsePayload holds platform-specific payloads.
type ResponsePayload struct {
	Google GooglePayload `json:"google"`
}

// GooglePayload is the Actions on Google response.
type GooglePayload struct {
	ExpectUserResponse bool         `json:"expectUserResponse"`
	RichResponse       RichResponse `json:"richResponse"`
}

// RichResponse is an ordered list of response items.
type RichResponse struct {
	Items []RichItem `json:"items"`
}

// RichItem holds exactly one of its fields.
type RichItem struct {
	SimpleResponse *SimpleResponse `json:"simpleResponse,omitempty"`
	BasicCard      *BasicCard      `json:"basicCard,omitempty"`
}

// SimpleResponse is spoken and displayed text.
type SimpleResponse struct {
	TextToSpeech string `json:"textToSpeech"`
	DisplayText  string `json:"displayText,omitempty"`
}

// BasicCard is a visual card with a title, body and image.
type BasicCard struct {
	Title         string `json:"title"`
	FormattedText string `json:"formattedText"`
	Image         *Image `json:"image,omitempty"`
}

// Image is a card image.
type Image struct {
	URL               string `json:"url"`
	AccessibilityText string `json:"accessibilityText"`
}

// NewWebhookResponse encodes reply as a WebhookResponse. The simple response
// is always first; a basic card follows only when reply carries one.
func NewWebhookResponse(reply *domain.Reply) *WebhookResponse {
	items := []RichItem{{
		SimpleResponse: &SimpleResponse{
			TextToSpeech: reply.Speech,
			DisplayText:  reply.DisplayText,
		},
	}}

	if reply.Card != nil {
		card := &BasicCard{
			Title:         reply.Card.Title,
			FormattedText: reply.Card.Body,
		}
		if reply.Card.ImageURL != "" {
			card.Image = &Image{URL: reply.Card.ImageURL, AccessibilityText: reply.Card.ImageAlt}
		}

		items = append(items, RichItem{BasicCard: card})
	}

	return &WebhookResponse{
		FulfillmentText: reply.DisplayText,
		Payload: ResponsePayload{
			Google: GooglePayload{
				ExpectUserResponse: !reply.EndConversation,
				RichResponse:       RichResponse{Items: items},
			},
		},
	}
}
