// Package kafka publishes journaled orders to the order topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/order"
	"taproom/internal/core/ports"
	"taproom/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const OrderSubmittedEventType = "order.submitted"

var ErrPublisherIsNotConstructed = errors.New("OrderPublisher must be created via NewOrderPublisher constructor")

// Producer is the part of *kafka.Writer the publisher needs.
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewWriter creates a writer that waits for all in-sync replicas.
func NewWriter(brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}

// OrderPublisher writes one order.submitted message per order, keyed by order id
// so that events of an order stay on one partition.
type OrderPublisher struct {
	producer Producer
	topic    string
	logger   *slog.Logger
	clock    func() time.Time
}

var _ ports.OrderEventPublisher = (*OrderPublisher)(nil)

func NewOrderPublisher(producer Producer, topic string, logger *slog.Logger) (*OrderPublisher, error) {
	if producer == nil {
		return nil, errs.NewValueIsRequiredError("producer")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "order_publisher"),
		clock:    time.Now,
	}, nil
}

// PublishOrderSubmitted writes the event of o. Write failures are returned
// to the caller unlogged.
func (p *OrderPublisher) PublishOrderSubmitted(ctx context.Context, o *order.Order) error {
	if p == nil || p.producer == nil {
		return ErrPublisherIsNotConstructed
	}
	if o == nil {
		return errs.NewValueIsRequiredError("order")
	}

	event := newOrderSubmittedEvent(o, p.clock())
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", OrderSubmittedEventType, err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(o.ID().String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "event_type", Value: []byte(OrderSubmittedEventType)},
		},
	}
	if err := p.producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s message to %s: %w", OrderSubmittedEventType, p.topic, err)
	}

	p.logger.InfoContext(ctx, "order published", "order_id", o.ID().String(), "event_id", event.EventID)
	return nil
}

// OrderSubmittedEvent is the JSON payload of an order.submitted message.
type OrderSubmittedEvent struct {
	EventID       string      `json:"eventId"`
	Type          string      `json:"type"`
	OccurredAt    time.Time   `json:"occurredAt"`
	OrderID       string      `json:"orderId"`
	Location      string      `json:"location"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerType  string      `json:"customerType"`
	Delivery      string      `json:"deliveryMethod"`
	Payment       string      `json:"paymentMethod"`
	Lines         []EventLine `json:"lines"`
	Subtotal      string      `json:"subtotal"`
	Freight       string      `json:"freight"`
	Total         string      `json:"total"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type EventLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Upsell    bool   `json:"upsell"`
}

func newOrderSubmittedEvent(o *order.Order, now time.Time) OrderSubmittedEvent {
	lines := make([]EventLine, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, EventLine{
			ProductID: string(l.ProductID),
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice().String(),
			Upsell:    l.UpsellOrigin,
		})
	}

	customer := o.Customer()
	return OrderSubmittedEvent{
		EventID:       kernel.NewUUID().String(),
		Type:          OrderSubmittedEventType,
		OccurredAt:    now.UTC(),
		OrderID:       o.ID().String(),
		Location:      o.Location().Code(),
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		CustomerType:  customer.Type.String(),
		Delivery:      o.Fulfillment().Method.String(),
		Payment:       o.PaymentMethod().Code(),
		Lines:         lines,
		Subtotal:      o.Subtotal().String(),
		Freight:       o.Freight().String(),
		Total:         o.Total().String(),
		CreatedAt:     o.CreatedAt().UTC(),
	}
}
