package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"glowspa/config"
	"glowspa/models"
	"glowspa/services/notification"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the task body carried through the queue.
type ReminderPayload struct {
	AppointmentID string    `json:"appointmentId"`
	UserID        string    `json:"userId"`
	ServiceName   string    `json:"serviceName"`
	DateTime      time.Time `json:"dateTime"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues a reminder push ahead of each appointment.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
	logger *zap.Logger
}

// NewReminderScheduler creates a scheduler with the configured lead time.
func NewReminderScheduler(logger *zap.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(redisOpts()),
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
		logger: logger,
	}
}

// ScheduleReminder queues a reminder to fire before the appointment. Past or
// imminent appointments are skipped silently.
func (s *ReminderScheduler) ScheduleReminder(userID string, appt *models.Appointment) error {
	runAt := appt.DateTime.Add(-s.lead)
	if runAt.Before(time.Now()) {
		return nil
	}
	payload, err := json.Marshal(ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        userID,
		ServiceName:   appt.ServiceName,
		DateTime:      appt.DateTime,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(runAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	s.logger.Info("reminder scheduled",
		zap.String("appointmentID", appt.ID),
		zap.Time("runAt", runAt))
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to parse reminder payload: %w", err)
		}
		body := fmt.Sprintf("Your %s appointment is at %s.",
			payload.ServiceName, payload.DateTime.Format("3:04 PM, Jan 2"))
		return notifSvc.SendUserPushNotification(ctx, payload.UserID,
			"Upcoming appointment", body,
			map[string]string{"appointmentId": payload.AppointmentID})
	}
}

// BookingHooks fans a confirmed booking out to the push and reminder
// pipelines. Both legs are best-effort.
type BookingHooks struct {
	Notifier  notification.NotificationService
	Reminders *ReminderScheduler
	Logger    *zap.Logger
}

// BookingConfirmed implements the wizard's confirmation hook.
func (h *BookingHooks) BookingConfirmed(ctx context.Context, userID string, appt *models.Appointment) {
	body := fmt.Sprintf("%s on %s is confirmed.",
		appt.ServiceName, appt.DateTime.Format("Jan 2 at 3:04 PM"))
	if err := h.Notifier.SendUserPushNotification(ctx, userID, "Booking confirmed", body,
		map[string]string{"appointmentId": appt.ID}); err != nil {
		h.Logger.Warn("confirmation push failed", zap.String("appointmentID", appt.ID), zap.Error(err))
	}
	if err := h.Reminders.ScheduleReminder(userID, appt); err != nil {
		h.Logger.Warn("reminder scheduling failed", zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
