package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AgentAssignmentJob retries the assignment of pending orders.
// Runs every second to match the oldest pending order with the nearest
// available agent, picking up orders that were created while no agent was
// in reach.
type AgentAssignmentJob struct {
	handler commands.AssignAgentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAgentAssignmentJob creates a new job for assigning agents to pending orders.
func NewAgentAssignmentJob(handler commands.AssignAgentCommandHandler, logger *slog.Logger) *AgentAssignmentJob {
	return &AgentAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "agent_assignment_job"),
	}
}

// Start begins the agent assignment job to run every second.
func (j *AgentAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignAgentCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrderFound) && !errors.Is(err, commands.ErrNoAvailableAgentFound) {
				j.logger.ErrorContext(ctx, "Agent assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Agent assignment job started (running every second)")
	return nil
}

// Stop stops the agent assignment job.
func (j *AgentAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Agent assignment job stopped")
}
