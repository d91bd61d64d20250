package payrollexport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/messaging"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/repository"
	"github.com/ad-altun/PerTiTrack-sub000/internal/worker"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// ExportProcessor handles jobs from the export queue, which involves calling
// the payroll API. It uses a circuit breaker to avoid hammering the payroll
// system while it is having issues.
type ExportProcessor struct {
	summaries repository.SummaryRepository
	payroll   Client
	cb        *gobreaker.CircuitBreaker
}

// NewProcessor creates a new processor for the export queue.
func NewProcessor(summaries repository.SummaryRepository, payroll Client) *ExportProcessor {
	settings := gobreaker.Settings{
		Name:        "Payroll-API",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate exceeds 50% after at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &ExportProcessor{
		summaries: summaries,
		payroll:   payroll,
		cb:        gobreaker.NewCircuitBreaker(settings),
	}
}

// Process handles one message from the export queue. The payroll call runs
// through the circuit breaker; failures retry with exponential backoff.
func (p *ExportProcessor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.DayClosedEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal day-closed event")
		return false, 0, err // Do not retry on malformed message
	}

	record, err := p.summaries.GetByID(ctx, event.SummaryID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to get summary from db: %w", err)
	}

	if record.ExportStatus == model.StatusExportCompleted {
		return false, 0, nil
	}

	_, err = p.cb.Execute(func() (interface{}, error) {
		return nil, p.payroll.ExportDay(ctx, event)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			log.Ctx(ctx).Warn().Msg("Circuit breaker is OPEN; skipping payroll API call")
		}
		newCount := record.ExportRetryCount + 1
		p.summaries.UpdateExportStatus(ctx, event.SummaryID, model.StatusExportPending, newCount)

		delay := worker.CalculateBackoff(newCount)
		return true, delay, err
	}

	err = p.summaries.UpdateExportStatus(ctx, event.SummaryID, model.StatusExportCompleted, 0)
	return false, 0, err
}
