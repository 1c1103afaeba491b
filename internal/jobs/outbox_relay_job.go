package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultRelaySchedule = "*/5 * * * * *"

// RelayHandler is satisfied by commands.RelayOutboxCommandHandler.
type RelayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes pending outbox messages.
// A tick is skipped while the previous one is still running.
type OutboxRelayJob struct {
	handler  RelayHandler
	cmd      commands.RelayOutboxCommand
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

func NewOutboxRelayJob(
	handler RelayHandler,
	cmd commands.RelayOutboxCommand,
	schedule string,
	logger *slog.Logger,
) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Run executes one relay pass. Exported for tests and manual triggering.
func (j *OutboxRelayJob) Run() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	defer func() {
		j.mu.Lock()
		j.running = false
		j.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "published", n, "error", err)
		return
	}
	if n > 0 {
		j.logger.DebugContext(ctx, "Outbox relayed", "published", n)
	}
}

// Stop waits for a running pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
