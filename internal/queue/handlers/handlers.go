package handlers

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/soundvault/soundvault/internal/usecase"
)

// Handlers contains all queue task handlers
type Handlers struct {
	usecase usecase.Usecase
	logger  *slog.Logger
}

func NewHandlers(uc usecase.Usecase, logger *slog.Logger) *Handlers {
	return &Handlers{
		usecase: uc,
		logger:  logger,
	}
}

// HandleReconcileStorage runs one orphan sweep over the object store.
func (h *Handlers) HandleReconcileStorage(ctx context.Context, _ *asynq.Task) error {
	h.logger.Info("Processing storage:reconcile task")

	report, err := h.usecase.ReconcileStorage(ctx)
	if err != nil {
		h.logger.Error("Reconcile sweep failed", slog.String("err", err.Error()))
		return err
	}

	h.logger.Info("Reconcile sweep completed",
		slog.Int("scanned", report.Scanned),
		slog.Int("orphans", len(report.Orphans)),
		slog.Int("removed", report.Removed),
	)
	return nil
}
