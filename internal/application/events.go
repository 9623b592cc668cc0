package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	EventBlogCreated    = "blog.created"
	EventBlogUpdated    = "blog.updated"
	EventBlogDeleted    = "blog.deleted"
	EventUserRegistered = "user.registered"
)

// EventPublisher pushes a JSON-encodable message to a broker under a
// routing key. The event type is used as the key.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

// Event is the payload published after every successful write.
type Event struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

// publish is fire-and-forget: a broker failure never fails the request.
func publish(ctx context.Context, pub EventPublisher, logger *logrus.Logger, typ, id string, data any) {
	if pub == nil {
		return
	}
	ev := Event{Type: typ, ID: id, OccurredAt: time.Now().UTC(), Data: data}
	if err := pub.Publish(ctx, typ, ev); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{"event": typ, "id": id}).Warn("publish event failed")
	}
}
