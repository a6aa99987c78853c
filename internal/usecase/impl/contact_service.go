package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "light3d/internal/delivery/context"
	"light3d/internal/domain/constants"
	"light3d/internal/domain/service"
	"light3d/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type contactService struct {
	mailComposer   service.MailComposer
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	MailComposer   service.MailComposer
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewContactService creates a new contact service instance
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		mailComposer:   params.MailComposer,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// SubmitContactForm composes the contact email draft and publishes the event
func (s *contactService) SubmitContactForm(ctx context.Context, input *usecase.ContactInput) (*service.MailDraft, error) {
	draft := s.mailComposer.ComposeContactMessage(input.Name, input.Email, input.Subject, input.Message)

	event := &service.AnalyticsEvent{
		EventID:    uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       constants.EventContactForm,
		Params:     map[string]any{"subject": input.Subject},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.PublishAnalyticsEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish analytics event",
			slog.String("event_name", constants.EventContactForm),
			slog.Any("error", err),
		)
	}

	return draft, nil
}
