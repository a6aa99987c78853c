package usecase

import (
	"context"

	"light3d/internal/domain/service"
)

// ContactInput represents a contact-form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactUsecase defines the interface for the contact-form use case.
type ContactUsecase interface {
	// SubmitContactForm composes the contact email draft and publishes a
	// contact_form analytics event.
	SubmitContactForm(ctx context.Context, input *ContactInput) (*service.MailDraft, error)
}
