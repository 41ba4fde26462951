package models

// OutboundEmail is the triple handed to the external delivery mechanism
// after a confirmed send. Delivery itself is not performed here.
type OutboundEmail struct {
	RecipientEmail string `json:"recipientEmail"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

// OutreachEmailPayload is the delivery-queue payload for a confirmed send.
type OutreachEmailPayload struct {
	SessionID     string        `json:"sessionId"`
	CandidateName string        `json:"candidateName"`
	Email         OutboundEmail `json:"email"`
}
