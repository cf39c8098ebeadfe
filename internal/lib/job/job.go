// Package job runs background tasks on an Asynq worker backed by redis.
// The pipelines enqueue email work here so a slow mail provider never
// affects a request's outcome.
package job

import (
	"github.com/emelinabraham-cmd/homeease-api/internal/config"
	"github.com/emelinabraham-cmd/homeease-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type JobService struct {
	Client *asynq.Client

	server      *asynq.Server
	logger      *zerolog.Logger
	emailClient *email.Client
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	svc := &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
	svc.initHandlers(cfg, logger)

	return svc
}

// Start registers task handlers and launches the worker server. Asynq's
// Start returns immediately; processing happens on its own goroutines.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskBookingConfirmation, j.handleBookingConfirmationTask)
	mux.HandleFunc(TaskSupportAck, j.handleSupportAckTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
