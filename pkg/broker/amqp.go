// Package broker publishes intent events to a RabbitMQ queue.
package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Message is a single event handed to the broker.
type Message struct {
	ID            string
	CorrelationID string
	Type          string
	Body          []byte
	AcceptedAt    time.Time
}

type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type dialFunc func(url string) (channel, func() error, error)

func dialAMQP(url string) (channel, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return ch, conn.Close, nil
}

// Publisher writes persistent JSON messages to a durable queue, redialling after a
// failed publish.
type Publisher struct {
	url    string
	queue  string
	dial   dialFunc
	logger *zap.Logger

	mu        sync.Mutex
	ch        channel
	closeConn func() error
}

// NewPublisher dials url and declares queue.
func NewPublisher(url, queue string, logger *zap.Logger) (*Publisher, error) {
	return newPublisher(url, queue, dialAMQP, logger)
}

func newPublisher(url, queue string, dial dialFunc, logger *zap.Logger) (*Publisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Publisher{url: url, queue: queue, dial: dial, logger: logger}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connectLocked() error {
	ch, closeConn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("dial amqp: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		if closeConn != nil {
			_ = closeConn()
		}
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}
	p.ch = ch
	p.closeConn = closeConn
	return nil
}

func (p *Publisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.closeConn != nil {
		_ = p.closeConn()
	}
	p.ch = nil
	p.closeConn = nil
}

// Publish sends msg to the queue.
func (p *Publisher) Publish(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		if err := p.connectLocked(); err != nil {
			return err
		}
	}

	err := p.ch.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     msg.ID,
		CorrelationId: msg.CorrelationID,
		Type:          msg.Type,
		Timestamp:     msg.AcceptedAt,
		Body:          msg.Body,
	})
	if err != nil {
		p.logger.Warn("amqp publish failed", zap.String("queue", p.queue), zap.String("message_id", msg.ID), zap.Error(err))
		p.resetLocked()
		return fmt.Errorf("publish %s: %w", msg.ID, err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return nil
	}
	var errs []error
	if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		errs = append(errs, err)
	}
	if p.closeConn != nil {
		if err := p.closeConn(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	p.ch = nil
	p.closeConn = nil
	return errors.Join(errs...)
}
