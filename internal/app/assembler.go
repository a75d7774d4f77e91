package app

import "github.com/jsamuelsen/quote-fulfillment/internal/domain"

// AssembleReply builds the reply for a selected quote.
//
// The spoken text is the long attribution. The display text is the document's
// info line, or the spoken text when the document has none. A card is added
// only when the surface can show one.
func AssembleReply(q domain.SelectedQuote, msgs domain.Messages, hasScreen bool, imageURL string) *domain.Reply {
	speech := msgs.Long(q.Author, q.Text)

	display := q.Info
	if display == "" {
		display = speech
	}

	reply := &domain.Reply{
		Speech:          speech,
		DisplayText:     display,
		EndConversation: true,
	}

	if hasScreen {
		reply.Card = &domain.Card{
			Title:    msgs.Short(q.Author),
			Body:     q.Text,
			ImageURL: imageURL,
			ImageAlt: msgs.AccessibilityText,
		}
	}

	return reply
}

// AssembleApology builds the reply used when no quote can be produced.
func AssembleApology(msgs domain.Messages) *domain.Reply {
	return &domain.Reply{
		Speech:          msgs.Problem,
		DisplayText:     msgs.Problem,
		EndConversation: true,
	}
}
