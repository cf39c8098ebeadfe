package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/emelinabraham-cmd/homeease-api/internal/config"
	"github.com/emelinabraham-cmd/homeease-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

func (j *JobService) initHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emailClient = email.NewClient(cfg, logger)
}

func (j *JobService) handleBookingConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p BookingConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal booking confirmation payload: %w", err)
	}

	j.logger.Info().
		Str("type", "booking_confirmation").
		Str("to", p.To).
		Msg("processing booking confirmation email task")

	if err := j.emailClient.SendBookingConfirmation(p.To, p.Name, p.ServiceName, p.BookingDate, p.BookingTime); err != nil {
		j.logger.Error().
			Str("type", "booking_confirmation").
			Str("to", p.To).
			Err(err).
			Msg("failed to send booking confirmation email")
		// Returned errors make Asynq mark the task failed and retry it.
		return err
	}

	return nil
}

func (j *JobService) handleSupportAckTask(ctx context.Context, t *asynq.Task) error {
	var p SupportAckPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal support ack payload: %w", err)
	}

	j.logger.Info().
		Str("type", "support_ack").
		Str("to", p.To).
		Msg("processing support ack email task")

	if err := j.emailClient.SendSupportAck(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "support_ack").
			Str("to", p.To).
			Err(err).
			Msg("failed to send support ack email")
		return err
	}

	return nil
}
