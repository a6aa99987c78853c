package service

import "light3d/internal/domain/entity"

// MailDraft is a fully composed email the visitor sends from their own mail
// client. Body is plain text (also used as the clipboard payload); MailtoURI
// is the same content percent-encoded into a mailto: link.
type MailDraft struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	MailtoURI string `json:"mailto_uri"`
}

// MailComposer builds the outgoing email drafts. The storefront never sends
// mail itself; drafts are handed to the visitor to review and send.
type MailComposer interface {
	// ComposeOrderRequest renders the submitted order as an email request
	// addressed to the shop.
	ComposeOrderRequest(order *entity.Order) *MailDraft

	// ComposeContactMessage renders a contact-form submission as an email
	// addressed to the shop.
	ComposeContactMessage(name, email, subject, message string) *MailDraft
}
