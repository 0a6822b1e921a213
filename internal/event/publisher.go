package event

import (
	"context"
	"encoding/json"

	"github.com/BRTheDuality/passae/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewEventPublisher(amqpURL, exchange string) (*EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &EventPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *EventPublisher) Publish(eventType string, payload interface{}) error {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	logrus.WithField("type", eventType).Debug("publicando evento")

	// Use the event type as the routing key for topic exchange
	return p.channel.Publish(
		p.exchange,
		eventType, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *EventPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// RespostaMirror adapts the publisher to the stats mirror contract, so
// each answered quick question is also announced on the bus.
type RespostaMirror struct {
	Publisher *EventPublisher
}

func (m *RespostaMirror) Create(ctx context.Context, ev *models.RespostaEvento) error {
	return m.Publisher.Publish("desempenho.resposta", ev)
}
