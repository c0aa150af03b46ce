package guidance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/journey"
	"github.com/abhisek/pathwise/internal/ranker"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/trigger"
)

// ProgressUpdate is one reported change on a step.
type ProgressUpdate struct {
	StepNumber int
	// Status is the reported outcome: StepInProgress (started),
	// StepCompleted or StepBlocked.
	Status     journey.StepStatus
	HoursSpent float64
	// BlockerReason accompanies a StepBlocked report.
	BlockerReason string
}

// ProgressResult is what a progress report produced.
type ProgressResult struct {
	Journey         *journey.Journey
	Step            *journey.Step
	ProgressPercent float64

	// Reevaluation is non-nil when this report tripped a trigger rule. Its
	// Decision tells the caller whether input is owed: pending means the
	// learner must choose, continue means no alternatives existed.
	Reevaluation *journey.Reevaluation
}

// ReportProgress applies one step update, evaluates the trigger rules and, if
// one fires, attaches a reevaluation with ranked alternatives. The whole
// operation commits or aborts as a unit: if ranking fails after a trigger
// fired, nothing is saved.
func (s *Service) ReportProgress(ctx context.Context, journeyID uuid.UUID, update ProgressUpdate) (*ProgressResult, error) {
	unlock := s.locks.lock(journeyID)
	defer unlock()

	j, version, err := s.journeys.Load(ctx, journeyID)
	if err != nil {
		return nil, err
	}

	justBlocked := 0
	switch update.Status {
	case journey.StepInProgress:
		err = j.StartStep(update.StepNumber)
	case journey.StepCompleted:
		err = j.CompleteStep(update.StepNumber, update.HoursSpent)
	case journey.StepBlocked:
		_, err = j.ReportBlocker(update.StepNumber, update.BlockerReason, update.HoursSpent)
		justBlocked = update.StepNumber
	default:
		return nil, fmt.Errorf("unsupported progress status %q: %w", update.Status, journey.ErrInvalidTransition)
	}
	if err != nil {
		return nil, err
	}

	var reeval *journey.Reevaluation
	if req := trigger.Evaluate(j, justBlocked); req != nil {
		reeval, err = s.reevaluate(ctx, j, req)
		if err != nil {
			return nil, err
		}
	}

	if err := s.journeys.Save(ctx, j, version); err != nil {
		return nil, err
	}

	step, _ := j.Step(update.StepNumber)
	s.appendProgressEvents(ctx, j, update, reeval)

	return &ProgressResult{
		Journey:         j,
		Step:            step,
		ProgressPercent: j.ProgressPercent(),
		Reevaluation:    reeval,
	}, nil
}

// reevaluate ranks alternatives and records the checkpoint on the journey.
// An empty candidate pool is not a failure: the checkpoint is recorded
// already decided as continue, since there is nothing to choose.
func (s *Service) reevaluate(ctx context.Context, j *journey.Journey, req *trigger.Request) (*journey.Reevaluation, error) {
	reeval := &journey.Reevaluation{
		Trigger:    req.Type,
		Severity:   req.Severity,
		StepNumber: req.StepNumber,
		Multiple:   req.Multiple,
	}

	alts, err := s.ranker.Alternatives(ctx, j.Profile, ownedSkills(j), j.TargetRole)
	switch {
	case errors.Is(err, ranker.ErrNoAlternatives):
		now := time.Now().UTC()
		reeval.Decision = journey.DecisionContinue
		reeval.DecidedAt = &now
		s.log.Info("reevaluation found no alternatives",
			zap.String("journey", j.ID.String()),
			zap.String("trigger", string(req.Type)))
	case err != nil:
		return nil, collaboratorErr("ranker", err)
	default:
		reeval.Alternatives = alts
	}

	j.RecordReevaluation(reeval)

	s.log.Info("reevaluation triggered",
		zap.String("journey", j.ID.String()),
		zap.String("trigger", string(req.Type)),
		zap.String("severity", string(req.Severity)),
		zap.Int("alternatives", len(reeval.Alternatives)))
	return reeval, nil
}

// appendProgressEvents writes audit events for a committed report. The audit
// trail is best effort: failures are logged, never surfaced.
func (s *Service) appendProgressEvents(ctx context.Context, j *journey.Journey, update ProgressUpdate, reeval *journey.Reevaluation) {
	if s.events == nil {
		return
	}

	var kind, detail string
	switch update.Status {
	case journey.StepInProgress:
		kind, detail = "step_started", ""
	case journey.StepCompleted:
		kind, detail = "step_completed", ""
	case journey.StepBlocked:
		kind, detail = "blocker_reported", update.BlockerReason
	}
	s.appendEvent(ctx, store.ProgressEventData{
		JourneyID:  j.ID,
		Kind:       kind,
		StepNumber: update.StepNumber,
		Detail:     detail,
	})

	if reeval != nil {
		s.appendEvent(ctx, store.ProgressEventData{
			JourneyID:  j.ID,
			Kind:       "reevaluation",
			StepNumber: reeval.StepNumber,
			Detail:     string(reeval.Trigger),
		})
	}
}

func (s *Service) appendEvent(ctx context.Context, data store.ProgressEventData) {
	if err := s.events.AppendProgress(ctx, data); err != nil {
		s.log.Warn("progress event append failed",
			zap.String("journey", data.JourneyID.String()),
			zap.String("kind", data.Kind),
			zap.Error(err))
	}
}
