package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"gigboard/internal/config"
	"gigboard/internal/models"
)

// Producer streams moderation lifecycle messages. One writer serves all
// topics; messages are keyed by record id.
type Producer struct {
	Writer *kafka.Writer
	Topics config.TopicConfig
}

func NewProducer(brokers []string, topics config.TopicConfig) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{Writer: writer, Topics: topics}
}

func (p *Producer) Publish(topic, key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message for %s: %w", topic, err)
	}

	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: value,
		},
	)
}

func (p *Producer) EventCreated(event models.Event) error {
	return p.Publish(p.Topics.EventCreated, event.ID, event)
}

func (p *Producer) EventUpdated(event models.Event) error {
	return p.Publish(p.Topics.EventUpdated, event.ID, event)
}

func (p *Producer) EventDeleted(id string) error {
	return p.Publish(p.Topics.EventDeleted, id, map[string]string{"id": id})
}

func (p *Producer) SubmissionReceived(submission models.Submission) error {
	return p.Publish(p.Topics.SubmissionReceived, submission.ID, submission)
}

func (p *Producer) SubmissionApproved(submission models.Submission) error {
	return p.Publish(p.Topics.SubmissionApproved, submission.ID, submission)
}

func (p *Producer) ReportFiled(report models.Report) error {
	return p.Publish(p.Topics.ReportFiled, report.ID, report)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
