package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"tailor/internal/core/application/usecases/commands"
)

// DefaultDeliveryReminderSchedule runs the reminder job every day at 08:00.
const DefaultDeliveryReminderSchedule = "0 0 8 * * *"

type DeliveryReminderHandler interface {
	Handle(ctx context.Context, cmd commands.SendDeliveryRemindersCommand) (int, error)
}

// DeliveryReminderJob reminds customers whose order is due today but still
// in production.
type DeliveryReminderJob struct {
	handler  DeliveryReminderHandler
	schedule string
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

// NewDeliveryReminderJob creates the job. An empty schedule uses
// DefaultDeliveryReminderSchedule; loc is the timezone the schedule runs in.
func NewDeliveryReminderJob(
	handler DeliveryReminderHandler,
	schedule string,
	loc *time.Location,
	logger *slog.Logger,
) *DeliveryReminderJob {
	if schedule == "" {
		schedule = DefaultDeliveryReminderSchedule
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DeliveryReminderJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		now:      time.Now,
		logger:   logger.With("component", "delivery_reminder_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *DeliveryReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started", "schedule", j.schedule)
	return nil
}

// Run sends one batch of reminders.
func (j *DeliveryReminderJob) Run(ctx context.Context) {
	cmd, err := commands.NewSendDeliveryRemindersCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery reminder command is invalid", "error", err)
		return
	}

	sent, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery reminder job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Delivery reminder job finished", "orders", sent)
}

// Stop stops the scheduler and waits for a running batch to finish.
func (j *DeliveryReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}
