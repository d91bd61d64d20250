package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/messaging"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/repository"
	"github.com/ad-altun/PerTiTrack-sub000/internal/worker"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NotifyProcessor handles jobs from the notify queue: it mails the employee
// their closed-day summary and tracks progress on the snapshot row.
type NotifyProcessor struct {
	emailService core.EmailService
	summaries    repository.SummaryRepository
	employees    repository.EmployeeRepository
	users        repository.UserRepository
}

// NewProcessor sets up a new processor for summary-email jobs.
func NewProcessor(
	emailService core.EmailService,
	summaries repository.SummaryRepository,
	employees repository.EmployeeRepository,
	users repository.UserRepository,
) *NotifyProcessor {
	return &NotifyProcessor{
		emailService: emailService,
		summaries:    summaries,
		employees:    employees,
		users:        users,
	}
}

// Process handles one message from the notify queue. It sends the summary
// email and tells the worker to retry with backoff if something goes wrong.
func (p *NotifyProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.DayClosedEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal day-closed event")
		return false, 0, err // Do not retry on malformed message
	}

	record, err := p.summaries.GetByID(ctx, event.SummaryID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to get summary from db for notify processing: %w", err)
	}

	if record.NotifyStatus == model.StatusNotifyCompleted {
		log.Ctx(ctx).Info().Int64("summary_id", event.SummaryID).Msg("Summary email already sent. Skipping.")
		return false, 0, nil
	}

	email, err := p.recipient(ctx, event.EmployeeID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to resolve recipient: %w", err)
	}

	err = p.emailService.SendDaySummary(ctx, email, event.WorkDate,
		time.Duration(event.WorkingMinutes)*time.Minute,
		time.Duration(event.BreakMinutes)*time.Minute,
		time.Duration(event.FlexMinutes)*time.Minute,
	)
	if err != nil {
		newCount := record.NotifyRetryCount + 1
		p.summaries.UpdateNotifyStatus(ctx, event.SummaryID, model.StatusNotifyPending, newCount)

		delay := worker.CalculateBackoff(newCount)
		return true, delay, err
	}

	err = p.summaries.UpdateNotifyStatus(ctx, event.SummaryID, model.StatusNotifyCompleted, 0)
	return false, 0, err
}

// recipient resolves the login email behind an employee ID.
func (p *NotifyProcessor) recipient(ctx context.Context, employeeID string) (string, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return "", err
	}
	employee, err := p.employees.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	user, err := p.users.GetByID(ctx, employee.UserID)
	if err != nil {
		return "", err
	}
	return user.Email, nil
}
