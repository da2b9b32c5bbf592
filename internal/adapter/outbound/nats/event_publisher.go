package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/riftbook/rift-social/internal/domain/event"
	"github.com/riftbook/rift-social/internal/port/outbound/messaging"
)

// eventPublisher implements messaging.EventPublisher and
// messaging.DirectSubscriber on one NATS connection. Direct delivery
// uses a per-user subject so a connected client's stream bridge can
// subscribe to exactly its own traffic.
type eventPublisher struct {
	conn          *nats.Conn
	subjectPrefix string
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(conn *nats.Conn, subjectPrefix string) *eventPublisher {
	if subjectPrefix == "" {
		subjectPrefix = "riftbook"
	}
	return &eventPublisher{
		conn:          conn,
		subjectPrefix: subjectPrefix,
	}
}

func (p *eventPublisher) Publish(ctx context.Context, evt event.Event) error {
	data, err := marshalEnvelope(evt)
	if err != nil {
		return err
	}

	if err := p.conn.Publish(p.subjectForEvent(evt), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (p *eventPublisher) PublishDirect(ctx context.Context, userID string, evt event.Event) error {
	data, err := marshalEnvelope(evt)
	if err != nil {
		return err
	}

	if err := p.conn.Publish(p.directSubject(userID), data); err != nil {
		return fmt.Errorf("failed to publish direct event: %w", err)
	}
	return nil
}

func (p *eventPublisher) SubscribeDirect(userID string, handler func(data []byte)) (func(), error) {
	sub, err := p.conn.Subscribe(p.directSubject(userID), func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to direct subject: %w", err)
	}

	return func() {
		// Unsubscribe errors on teardown carry no recovery path.
		_ = sub.Unsubscribe()
	}, nil
}

func (p *eventPublisher) subjectForEvent(evt event.Event) string {
	return fmt.Sprintf("%s.%s", p.subjectPrefix, messaging.TopicForEvent(evt))
}

func (p *eventPublisher) directSubject(userID string) string {
	return fmt.Sprintf("%s.social.direct.%s", p.subjectPrefix, userID)
}

func marshalEnvelope(evt event.Event) ([]byte, error) {
	envelope := eventEnvelope{
		EventID:       evt.EventID().String(),
		EventType:     evt.EventType(),
		AggregateID:   evt.AggregateID(),
		AggregateType: evt.AggregateType(),
		OccurredAt:    evt.OccurredAt().Unix(),
		Payload:       evt,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, nil
}

// eventEnvelope wraps an event with metadata for transport.
type eventEnvelope struct {
	EventID       string      `json:"event_id"`
	EventType     string      `json:"event_type"`
	AggregateID   string      `json:"aggregate_id"`
	AggregateType string      `json:"aggregate_type"`
	OccurredAt    int64       `json:"occurred_at"`
	Payload       interface{} `json:"payload"`
}
