package service

import (
	"context"
	"testing"
	"time"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSupportService() (*mockSupportRepo, *mockProfileRepo, *mockTaskEnqueuer, *SupportService) {
	support := &mockSupportRepo{}
	profiles := &mockProfileRepo{}
	tasks := &mockTaskEnqueuer{}
	return support, profiles, tasks, NewSupportService(support, profiles, tasks, testLogger())
}

func supportSnapshot(message string) *domain.SupportMessageSnapshot {
	return &domain.SupportMessageSnapshot{
		SupportMessage: domain.SupportMessage{
			ID:      "m1",
			UserID:  "u1",
			Message: message,
			Status:  domain.SupportMessageStatusOpen,
		},
		Submitter: domain.SupportSubmitterInfo{Name: "Alice"},
	}
}

func TestSupportService_Create_ComposesSubjectHeader(t *testing.T) {
	support, profiles, tasks, svc := newSupportService()

	composed := "Subject: Billing\n\nMy last invoice is wrong."
	support.On("Insert", mock.Anything, "u1", composed).Return(supportSnapshot(composed), nil)
	profiles.On("Get", mock.Anything, "u1").Return(&domain.Profile{ID: "u1", Name: "Alice", Email: "alice@example.com"}, nil)
	tasks.On("Enqueue", mock.Anything).Return(nil, nil)

	got, err := svc.Create(context.Background(), "u1", "Billing", "  My last invoice is wrong.  ")

	require.NoError(t, err)
	assert.Equal(t, composed, got.Message)
	assert.Equal(t, domain.SupportMessageStatusOpen, got.Status)

	time.Sleep(50 * time.Millisecond) // acknowledgement email goroutine
	tasks.AssertCalled(t, "Enqueue", mock.Anything)
	support.AssertExpectations(t)
}

func TestSupportService_Create_WhitespaceSubjectIsAbsent(t *testing.T) {
	support, profiles, tasks, svc := newSupportService()

	support.On("Insert", mock.Anything, "u1", "help me").Return(supportSnapshot("help me"), nil)
	profiles.On("Get", mock.Anything, "u1").Return(&domain.Profile{ID: "u1", Email: "alice@example.com"}, nil)
	tasks.On("Enqueue", mock.Anything).Return(nil, nil)

	got, err := svc.Create(context.Background(), "u1", "   ", "help me")

	require.NoError(t, err)
	assert.Equal(t, "help me", got.Message)

	time.Sleep(50 * time.Millisecond)
}

func TestSupportService_Create_AckFailureDoesNotSurface(t *testing.T) {
	support, profiles, tasks, svc := newSupportService()

	support.On("Insert", mock.Anything, "u1", "help me").Return(supportSnapshot("help me"), nil)
	profiles.On("Get", mock.Anything, "u1").Return(nil, context.DeadlineExceeded)

	_, err := svc.Create(context.Background(), "u1", "", "help me")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	tasks.AssertNotCalled(t, "Enqueue", mock.Anything)
}
