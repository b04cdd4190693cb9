package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "winespa/internal/delivery/context"
	"winespa/internal/domain/entity"
	"winespa/internal/domain/service"
)

func newAccountEvent(ctx context.Context, eventType service.AccountEventType, account *entity.Account) *service.AccountEvent {
	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		AccountID:  account.ID.String(),
		Kind:       account.Kind.String(),
		Email:      account.Email,
		FullName:   account.FullName,
		Status:     account.Status.String(),
		OccurredAt: time.Now().UTC(),
	}
	if account.RoleID != nil {
		event.RoleID = account.RoleID.String()
	}

	return event
}

func newRoleEvent(ctx context.Context, role *entity.Role) *service.AccountEvent {
	return &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventRolePermissionsChanged,
		RoleID:     role.ID.String(),
		Status:     role.Status.String(),
		OccurredAt: time.Now().UTC(),
	}
}

// publishEvent runs after commit. A failed publish is logged and never undoes the committed change.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.AccountEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish account event",
			slog.String("event_type", string(event.Type)),
			slog.String("account_id", event.AccountID),
			slog.Any("error", err),
		)
	}
}
