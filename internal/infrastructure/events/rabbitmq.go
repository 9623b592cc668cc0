// Package events publishes domain events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends JSON messages to a durable topic exchange. A durable queue
// is bound to it with "#" so events are kept until a consumer drains them.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	Exchange string
	Queue    string
}

// NewPublisher dials url and declares the exchange, queue and binding. An
// empty url disables publishing and returns a nil publisher, which is safe
// to use.
func NewPublisher(url, exchange, queue string) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p := &Publisher{conn: conn, ch: ch, Exchange: exchange, Queue: queue}
	if err := p.declare(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *Publisher) declare() error {
	if err := p.ch.ExchangeDeclare(
		p.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return err
	}
	if _, err := p.ch.QueueDeclare(p.Queue, true, false, false, false, nil); err != nil {
		return err
	}
	return p.ch.QueueBind(p.Queue, "#", p.Exchange, false, nil)
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Publish sends body as a persistent JSON message under routingKey.
func (p *Publisher) Publish(ctx context.Context, routingKey string, body any) error {
	if p == nil || p.ch == nil {
		return nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx,
		p.Exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         routingKey,
			Body:         b,
		},
	)
}
