// Package kafka publishes agent-facing notifications to Kafka topics.
//
// The sink uses a synchronous producer so a returned nil error means the
// broker acknowledged the message. Callers treat notification delivery as
// best-effort: a failed publish is logged and never rolls back the
// assignment that triggered it.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// AgentAssignedNotification is the wire payload sent to an agent when an
// order is assigned to them.
type AgentAssignedNotification struct {
	AgentID         string    `json:"agent_id"`
	OrderID         string    `json:"order_id"`
	RestaurantName  string    `json:"restaurant_name"`
	CustomerName    string    `json:"customer_name"`
	DeliveryAddress string    `json:"delivery_address"`
	TotalAmount     float64   `json:"total_amount"`
	OrderCreatedAt  time.Time `json:"order_created_at"`
	NotifiedAt      time.Time `json:"notified_at"`
}

var _ ports.NotificationSink = (*NotificationSink)(nil)

// NotificationSink delivers assignment notifications through a Kafka topic.
// Messages are keyed by agent ID so all notifications for one agent land on
// the same partition and arrive in order.
type NotificationSink struct {
	producer sarama.SyncProducer
	topic    string
}

// NewNotificationSink connects to the given brokers and returns a sink
// publishing to topic. The caller owns the sink and must Close it.
func NewNotificationSink(brokers []string, topic string) (*NotificationSink, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &NotificationSink{producer: producer, topic: topic}, nil
}

// NewNotificationSinkWithProducer wires an existing producer, which lets
// tests substitute a mock without a running broker.
func NewNotificationSinkWithProducer(producer sarama.SyncProducer, topic string) (*NotificationSink, error) {
	if producer == nil {
		return nil, errs.NewValueIsRequiredError("producer")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	return &NotificationSink{producer: producer, topic: topic}, nil
}

// NotifyAgentAssigned publishes an AgentAssignedNotification for the agent.
func (s *NotificationSink) NotifyAgentAssigned(
	ctx context.Context, agentID kernel.UUID, summary ports.OrderSummary) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	notification := AgentAssignedNotification{
		AgentID:         agentID.String(),
		OrderID:         summary.OrderID.String(),
		RestaurantName:  summary.RestaurantName,
		CustomerName:    summary.CustomerName,
		DeliveryAddress: summary.DeliveryAddress,
		TotalAmount:     summary.TotalAmount,
		OrderCreatedAt:  summary.CreatedAt,
		NotifiedAt:      time.Now().UTC(),
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal agent assigned notification: %w", err)
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(agentID.String()),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send agent assigned notification: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer.
func (s *NotificationSink) Close() error {
	return s.producer.Close()
}
