package response

// SubmissionResponse reports the outcome of a form submission. A submission
// that resolves no persistable quote is still a successful submission; the
// form plugin must never show the visitor an error for missing quote data.
type SubmissionResponse struct {
	Created   bool   `json:"created"`
	QuoteHash string `json:"quote_hash,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func SubmissionCreated(quoteHash string) SubmissionResponse {
	return SubmissionResponse{Created: true, QuoteHash: quoteHash}
}

func SubmissionSkipped(reason string) SubmissionResponse {
	return SubmissionResponse{Created: false, Reason: reason}
}
