package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

var (
	// ErrConnect возвращается при ошибке подключения к брокеру
	ErrConnect = errors.New("notifications: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("notifications: failed to publish event")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований в topic-exchange RabbitMQ.
// Доставка и рендеринг письма — забота потребителя; сервис бронирований
// только отправляет событие и не ждёт результата.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   Logger
}

// NewPublisher подключается к брокеру и объявляет exchange
func NewPublisher(url, exchange string, logger Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange: %v", ErrConnect, err)
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// PublishBookingCreated публикует событие booking.created.
// Если вложение календаря ещё не отрендерено, оно рендерится здесь.
func (p *Publisher) PublishBookingCreated(ctx context.Context, event *BookingCreatedEvent) error {
	if event.ICS == "" {
		event.ICS = BuildICS(event)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		RoutingKeyBookingCreated,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.logger.Info("notifications: published %s ref=%s", RoutingKeyBookingCreated, event.Reference)
	return nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return fmt.Errorf("notifications: close channel: %w", err)
	}
	return p.conn.Close()
}

// NopPublisher заглушка для выключенных уведомлений
type NopPublisher struct{}

// PublishBookingCreated ничего не делает
func (NopPublisher) PublishBookingCreated(_ context.Context, _ *BookingCreatedEvent) error {
	return nil
}
