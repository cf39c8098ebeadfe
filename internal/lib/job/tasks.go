package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskBookingConfirmation = "email:booking_confirmation"
	TaskSupportAck          = "email:support_ack"
)

type BookingConfirmationPayload struct {
	To          string `json:"to"`
	Name        string `json:"name"`
	ServiceName string `json:"service_name"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
}

type SupportAckPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

func NewBookingConfirmationTask(p BookingConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskBookingConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

func NewSupportAckTask(p SupportAckPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskSupportAck,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
