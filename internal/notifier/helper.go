package notifier

import (
	"context"

	"github.com/aleister1102/stalewatch/internal/models"
	"github.com/rs/zerolog"
)

// Outcome classifies what happened to one notification attempt
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeDelivered
	OutcomeSuppressed
	OutcomeDryRun
)

// String returns string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeFailed:
		return "failed"
	case OutcomeDelivered:
		return "delivered"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeDryRun:
		return "dry_run"
	default:
		return "invalid"
	}
}

// NotificationHelper renders and delivers reminders, consulting the optional
// dedupe store. With no store configured the pipeline is fully stateless:
// running twice in one interval sends the reminder twice.
type NotificationHelper struct {
	chat   *ChatClient
	dedupe *DedupeStore
	dryRun bool
	logger zerolog.Logger
}

// NewNotificationHelper creates a new notification helper. dedupe may be nil.
func NewNotificationHelper(chat *ChatClient, dedupe *DedupeStore, dryRun bool, logger zerolog.Logger) *NotificationHelper {
	return &NotificationHelper{
		chat:   chat,
		dedupe: dedupe,
		dryRun: dryRun,
		logger: logger.With().Str("component", "NotificationHelper").Logger(),
	}
}

// Notify delivers one stale-host reminder to the event's contact
func (nh *NotificationHelper) Notify(ctx context.Context, event models.NotificationEvent) (Outcome, error) {
	if nh.dedupe != nil {
		seen, err := nh.dedupe.AlreadyNotified(event)
		if err != nil {
			// A broken dedupe store must not block reminders; deliver anyway.
			nh.logger.Warn().Err(err).Str("hardware_serial", event.HardwareSerial).Msg("Dedupe lookup failed, delivering without suppression")
		} else if seen {
			nh.logger.Info().
				Str("hardware_serial", event.HardwareSerial).
				Str("observed_version", event.ObservedVersion).
				Msg("Reminder suppressed by dedupe store")
			return OutcomeSuppressed, nil
		}
	}

	text := FormatStaleReminder(event)

	if nh.dryRun {
		nh.logger.Info().
			Str("hardware_serial", event.HardwareSerial).
			Str("email", event.Contact.Email).
			Str("message", text).
			Msg("Dry run, reminder not sent")
		return OutcomeDryRun, nil
	}

	userID, err := nh.chat.LookupUserByEmail(ctx, event.Contact.Email)
	if err != nil {
		return OutcomeFailed, err
	}
	if err := nh.chat.PostDirectMessage(ctx, userID, event.Contact.Email, text); err != nil {
		return OutcomeFailed, err
	}

	nh.logger.Info().
		Str("hardware_serial", event.HardwareSerial).
		Str("email", event.Contact.Email).
		Str("platform", event.Platform.String()).
		Str("observed_version", event.ObservedVersion).
		Msg("Reminder delivered")

	if nh.dedupe != nil {
		if err := nh.dedupe.MarkNotified(event); err != nil {
			nh.logger.Warn().Err(err).Str("hardware_serial", event.HardwareSerial).Msg("Failed to record delivery in dedupe store")
		}
	}

	return OutcomeDelivered, nil
}
