package impl

import (
	"context"
	"testing"

	"light3d/internal/domain/constants"
	domainservice "light3d/internal/domain/service"
	mockSvc "light3d/internal/mocks/service"
	"light3d/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactService_SubmitContactForm(t *testing.T) {
	mockComposer := mockSvc.NewMockMailComposer(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewContactService(ContactServiceParams{
		MailComposer:   mockComposer,
		EventPublisher: mockPublisher,
		Logger:         discardLogger(),
	})

	ctx := context.Background()
	want := &domainservice.MailDraft{To: "hello@example.com", Subject: "Contact Form: Custom print"}
	mockComposer.EXPECT().
		ComposeContactMessage("Andreas", "andreas@example.com", "Custom print", "Can you print this model?").
		Return(want)

	var published *domainservice.AnalyticsEvent
	mockPublisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEvent")).
		Run(func(_ context.Context, event *domainservice.AnalyticsEvent) { published = event }).
		Return(nil)

	draft, err := svc.SubmitContactForm(ctx, &usecase.ContactInput{
		Name:    "Andreas",
		Email:   "andreas@example.com",
		Subject: "Custom print",
		Message: "Can you print this model?",
	})
	require.NoError(t, err)
	assert.Equal(t, want, draft)

	require.NotNil(t, published)
	assert.Equal(t, constants.EventContactForm, published.Name)
	assert.Equal(t, "Custom print", published.Params["subject"])
}

func TestContactService_PublishFailureDoesNotFailSubmit(t *testing.T) {
	mockComposer := mockSvc.NewMockMailComposer(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewContactService(ContactServiceParams{
		MailComposer:   mockComposer,
		EventPublisher: mockPublisher,
		Logger:         discardLogger(),
	})

	ctx := context.Background()
	mockComposer.EXPECT().
		ComposeContactMessage("Andreas", "andreas@example.com", "Hi", "Hello").
		Return(&domainservice.MailDraft{To: "hello@example.com"})
	mockPublisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEvent")).
		Return(assert.AnError)

	draft, err := svc.SubmitContactForm(ctx, &usecase.ContactInput{
		Name:    "Andreas",
		Email:   "andreas@example.com",
		Subject: "Hi",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.NotNil(t, draft)
}
