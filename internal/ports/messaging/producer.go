package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SQSQueueProducer publishes domain events to the notify and payroll-export queues.
type SQSQueueProducer struct {
	sender         MessageSender
	notifyQueueURL string
	exportQueueURL string
}

func NewProducer(sender MessageSender, notifyQueueURL, exportQueueURL string) *SQSQueueProducer {
	return &SQSQueueProducer{
		sender:         sender,
		notifyQueueURL: notifyQueueURL,
		exportQueueURL: exportQueueURL,
	}
}

func NewSQSProducer(client SQSClient, notifyQueueURL, exportQueueURL string) *SQSQueueProducer {
	return NewProducer(&SQSSender{client: client}, notifyQueueURL, exportQueueURL)
}

func (p *SQSQueueProducer) PublishNotify(ctx context.Context, body interface{}) error {
	return p.publish(ctx, p.notifyQueueURL, body)
}

func (p *SQSQueueProducer) PublishExport(ctx context.Context, body interface{}) error {
	return p.publish(ctx, p.exportQueueURL, body)
}

func (p *SQSQueueProducer) publish(ctx context.Context, destination string, body interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	// Enrich the current span with employee_id if available
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		var payload struct {
			EmployeeID string `json:"employeeId"`
		}
		if err := json.Unmarshal(b, &payload); err == nil && payload.EmployeeID != "" {
			span.SetAttributes(attribute.String("app.employee_id", payload.EmployeeID))
		}
	}

	if err := p.sender.SendMessage(ctx, destination, b); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
