package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/skillswap-service/internal/config"
	"github.com/spec-kit/skillswap-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSwapCreated, n.handleSwapCreated)
	n.dispatcher.Subscribe(events.EventSwapStatusChanged, n.handleSwapStatusChanged)
	n.dispatcher.Subscribe(events.EventSwapDeleted, n.handleSwapDeleted)
	n.dispatcher.Subscribe(events.EventFeedbackGiven, n.handleFeedbackGiven)
	n.dispatcher.Subscribe(events.EventUserBanned, n.handleUserBanned)
	n.dispatcher.Subscribe(events.EventBroadcast, n.handleBroadcast)
}

func (n *NotificationService) handleSwapCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("SwapCreated", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSwapStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("SwapStatusChanged", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSwapDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("SwapDeleted", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleFeedbackGiven(ctx context.Context, event events.Event) error {
	n.logger.Info("FeedbackGiven", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleUserBanned(ctx context.Context, event events.Event) error {
	n.logger.Info("UserBanned", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleBroadcast(ctx context.Context, event events.Event) error {
	n.logger.Info("PlatformBroadcast", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
