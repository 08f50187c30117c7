package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"

	"github.com/soundvault/soundvault/internal/config"
	"github.com/soundvault/soundvault/internal/database"
	"github.com/soundvault/soundvault/internal/filestorage"
	"github.com/soundvault/soundvault/internal/queue/handlers"
	"github.com/soundvault/soundvault/internal/usecase"
)

// Worker processes queued tasks.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	repo   interface{ Close() error }
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr: fmt.Sprintf("%s:%s",
			os.Getenv(config.ENV_KEY_REDIS_HOST),
			os.Getenv(config.ENV_KEY_REDIS_PORT),
		),
		Password: os.Getenv(config.ENV_KEY_REDIS_PASSWORD),
	}
}

func newUsecase() (usecase.Usecase, usecase.Repository, error) {
	repo, err := database.New()
	if err != nil {
		return usecase.Usecase{}, nil, fmt.Errorf("failed to create repository: %w", err)
	}

	fsp, err := filestorage.FromEnv(context.Background())
	if err != nil {
		return usecase.Usecase{}, nil, err
	}

	// The worker never exchanges or verifies tokens, and it runs
	// sweeps directly rather than enqueueing them.
	return usecase.New(repo, fsp, nil, nil), repo, nil
}

// NewWorker creates a fully configured worker with all dependencies.
func NewWorker(logger *slog.Logger) (*Worker, error) {
	uc, repo, err := newUsecase()
	if err != nil {
		return nil, err
	}

	concurrency := 10
	if wc, err := strconv.Atoi(os.Getenv(config.ENV_KEY_WORKER_CONCURRENCY)); err == nil && wc > 0 {
		concurrency = wc
	}

	server := asynq.NewServer(redisOpt(), asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			"default": 3,
			"low":     1,
		},
	})

	h := handlers.NewHandlers(uc, logger)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskReconcileStorage, h.HandleReconcileStorage)

	logger.Info("Worker registered handlers", slog.String("task", TaskReconcileStorage))

	return &Worker{server: server, mux: mux, repo: repo}, nil
}

func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

func (w *Worker) Stop() {
	w.server.Shutdown()
	if err := w.repo.Close(); err != nil {
		slog.Error("Error closing database", slog.String("err", err.Error()))
	}
}

// Scheduler enqueues the periodic reconciliation sweep.
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(logger *slog.Logger) (*Scheduler, error) {
	scheduler := asynq.NewScheduler(redisOpt(), nil)

	entry, err := scheduler.Register("@every 1h", asynq.NewTask(TaskReconcileStorage, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to register reconcile schedule: %w", err)
	}
	logger.Info("Registered schedule", slog.String("entry", entry), slog.String("task", TaskReconcileStorage))

	return &Scheduler{scheduler: scheduler}, nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Stop() {
	s.scheduler.Shutdown()
}
