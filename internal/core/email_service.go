package core

import (
	"context"
	"fmt"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/timeclock"
	"github.com/ad-altun/PerTiTrack-sub000/pkg/telemetry"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type EmailService interface {
	SendDaySummary(ctx context.Context, to string, workDate string, working, brk, flex time.Duration) error
}

type SESEmailService struct {
	client *ses.Client
	sender string
}

func NewSESEmailService(client *ses.Client, sender string) *SESEmailService {
	return &SESEmailService{client: client, sender: sender}
}

func (s *SESEmailService) SendDaySummary(ctx context.Context, to string, workDate string, working, brk, flex time.Duration) error {
	tracer := otel.Tracer("ses-email-service")
	ctx, span := tracer.Start(ctx, "send_email", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	// Enrich span with employee_id if available in context
	if empID := telemetry.GetEmployeeIDFromContext(ctx); empID != "" {
		span.SetAttributes(attribute.String("app.employee_id", empID))
	}

	body := fmt.Sprintf(
		"Hello,\n\nYour day (%s) is closed.\n\nNet working time: %s\nBreak time: %s\nFlex time: %s\n",
		workDate,
		timeclock.FormatDuration(working),
		timeclock.FormatDuration(brk),
		timeclock.FormatFlexTime(flex),
	)

	input := &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String("Daily Work Summary " + workDate),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
	}

	_, err := s.client.SendEmail(ctx, input)
	return err
}
