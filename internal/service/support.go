package service

import (
	"context"
	"strings"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/lib/job"
	"github.com/rs/zerolog"
)

// SupportService files customer support tickets.
type SupportService struct {
	support  SupportRepo
	profiles ProfileRepo
	tasks    TaskEnqueuer
	logger   *zerolog.Logger
}

func NewSupportService(support SupportRepo, profiles ProfileRepo, tasks TaskEnqueuer, logger *zerolog.Logger) *SupportService {
	return &SupportService{
		support:  support,
		profiles: profiles,
		tasks:    tasks,
		logger:   logger,
	}
}

// Create files a ticket for callerID. The subject, when it carries more
// than whitespace, is folded into the stored message body as a header
// line; an all-whitespace subject is treated as absent.
func (s *SupportService) Create(ctx context.Context, callerID, subject, message string) (*domain.SupportMessageSnapshot, error) {
	if strings.TrimSpace(subject) == "" {
		subject = ""
	}
	body := domain.ComposeSupportMessage(subject, strings.TrimSpace(message))

	snap, err := s.support.Insert(ctx, callerID, body)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("support_message_id", snap.ID).
		Str("user_id", callerID).
		Msg("support message created")

	go s.sendAck(context.WithoutCancel(ctx), callerID, snap)

	return snap, nil
}

// sendAck queues the acknowledgement email after the ticket is stored.
// Failures never surface to the caller.
func (s *SupportService) sendAck(ctx context.Context, userID string, snap *domain.SupportMessageSnapshot) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("support_message_id", snap.ID).
			Msg("skipping support acknowledgement email: profile lookup failed")
		return
	}

	task, err := job.NewSupportAckTask(job.SupportAckPayload{
		To:   profile.Email,
		Name: profile.Name,
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("support_message_id", snap.ID).
			Msg("failed to build support acknowledgement task")
		return
	}

	if _, err := s.tasks.Enqueue(task); err != nil {
		s.logger.Error().Err(err).
			Str("support_message_id", snap.ID).
			Msg("failed to enqueue support acknowledgement email")
	}
}
