// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package broker publishes domain events to RabbitMQ.

Events go to a durable fanout exchange, so every bound queue receives a copy
and the publisher does not need to know its consumers.
*/
package broker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// ErrClosed is returned when publishing on a closed connection.
var ErrClosed = errors.New("broker: connection closed")

// Publisher owns one AMQP connection and one channel.
//
// # Concurrency
//
// An AMQP channel is not safe for concurrent publishing; Publish serializes
// access with a mutex.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewPublisher dials url and declares the fanout exchange.
func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("broker: dial failed: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("broker: open channel failed: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("broker: declare exchange %q failed: %w", exchange, err)
	}

	logger.Info("amqp publisher connected", slog.String("exchange", exchange))

	return &Publisher{conn: conn, channel: channel, exchange: exchange, logger: logger}, nil
}

// Publish sends a persistent JSON message with the given routing key.
func (publisher *Publisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()

	if publisher.conn.IsClosed() {
		return ErrClosed
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := publisher.channel.PublishWithContext(publishCtx, publisher.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         routingKey,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("broker: publish %q failed: %w", routingKey, err)
	}
	return nil
}

// Ping reports whether the underlying connection is still open.
func (publisher *Publisher) Ping() error {
	if publisher.conn.IsClosed() {
		return ErrClosed
	}
	return nil
}

// Close closes the channel and the connection.
func (publisher *Publisher) Close() error {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()

	return errors.Join(publisher.channel.Close(), publisher.conn.Close())
}
