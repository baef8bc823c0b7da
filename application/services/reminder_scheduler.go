package services

import (
	"context"

	"mentcare/application/commands"
	"mentcare/application/commands/handlers"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderScheduler runs the reminder command on a fixed schedule
type ReminderScheduler struct {
	handler *handlers.SendRemindersHandler
	cron    *cron.Cron
	spec    string
	logger  *zap.Logger
}

// NewReminderScheduler creates a scheduler with the given cron spec
// (e.g. "@hourly")
func NewReminderScheduler(handler *handlers.SendRemindersHandler, spec string, logger *zap.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		handler: handler,
		cron:    cron.New(),
		spec:    spec,
		logger:  logger,
	}
}

// Start begins the schedule. Each tick runs one reminder sweep; a failed
// sweep is logged and retried on the next tick.
func (s *ReminderScheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.handler.Handle(ctx, commands.SendRemindersCommand{}); err != nil {
			s.logger.Error("Reminder sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Reminder scheduler started", zap.String("spec", s.spec))
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *ReminderScheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Reminder scheduler stopped")
}
