package response

import "rentalquotes/internal/usecase"

// QuickSendResponse is returned for every quick-send link hit. Outcome is
// "sent" on first use, "already_sent" on a plain revisit and "resent" when
// the admin explicitly asked for a resend.
type QuickSendResponse struct {
	Outcome      string        `json:"outcome"`
	Quote        QuoteResponse `json:"quote"`
	WhatsAppLink string        `json:"whatsapp_link,omitempty"`
	CallLink     string        `json:"call_link,omitempty"`
}

func FromQuickSendResult(r usecase.QuickSendResult) QuickSendResponse {
	return QuickSendResponse{
		Outcome:      string(r.Outcome),
		Quote:        FromQuote(r.Quote),
		WhatsAppLink: r.WhatsAppLink,
		CallLink:     r.CallLink,
	}
}
