package domain

import "time"

// SupportMessageStatus has a single in-scope value: tickets open as "open"
// and are worked outside this API.
type SupportMessageStatus string

const SupportMessageStatusOpen SupportMessageStatus = "open"

// SupportMessage is a customer support ticket. Message holds the final
// composed body, subject header included.
type SupportMessage struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Message   string               `json:"message"`
	Status    SupportMessageStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

// SupportSubmitterInfo is the slice of the submitter's profile joined into
// a support message snapshot.
type SupportSubmitterInfo struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

// SupportMessageSnapshot is the stored ticket plus its joined submitter
// fields.
type SupportMessageSnapshot struct {
	SupportMessage
	Submitter SupportSubmitterInfo `json:"submitter"`
}

// ComposeSupportMessage builds the persisted ticket body: the subject, when
// present, becomes a header line followed by a blank line, then the trimmed
// message.
func ComposeSupportMessage(subject, trimmedMessage string) string {
	if subject == "" {
		return trimmedMessage
	}
	return "Subject: " + subject + "\n\n" + trimmedMessage
}
