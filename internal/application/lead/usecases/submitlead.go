package usecases

import (
	"context"

	"bureau/internal/domain/lead"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

// RateLimiter answers whether one more intake from the given client identity
// fits in the current window. Implementations count the attempt.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type SubmitLeadCommand struct {
	Email    string
	Name     string
	Message  string
	SourceIP string
	Metadata map[string]interface{}
}

type SubmitLeadResult struct {
	LeadID uint
}

// SubmitLeadUseCase records a public lead after the per-client rate limit
// check. A limiter outage rejects the request rather than opening the
// endpoint to unthrottled intake.
type SubmitLeadUseCase struct {
	leadRepo lead.LeadRepository
	limiter  RateLimiter
	logger   logger.Interface
}

func NewSubmitLeadUseCase(leadRepo lead.LeadRepository, limiter RateLimiter, logger logger.Interface) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		leadRepo: leadRepo,
		limiter:  limiter,
		logger:   logger,
	}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, cmd SubmitLeadCommand) (*SubmitLeadResult, error) {
	uc.logger.Infow("executing submit lead use case", "source_ip", cmd.SourceIP)

	allowed, err := uc.limiter.Allow(ctx, cmd.SourceIP)
	if err != nil {
		uc.logger.Errorw("rate limiter unavailable", "source_ip", cmd.SourceIP, "error", err)
		return nil, errors.NewPersistenceError("lead intake is temporarily unavailable", err.Error())
	}
	if !allowed {
		uc.logger.Warnw("lead intake throttled", "source_ip", cmd.SourceIP)
		return nil, errors.NewConflictError("too many lead submissions, retry later")
	}

	newLead, err := lead.NewLead(cmd.Email, cmd.Name, cmd.Message, cmd.SourceIP, cmd.Metadata)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.leadRepo.Save(ctx, newLead); err != nil {
		return nil, errors.NewPersistenceError("failed to save lead", err.Error())
	}

	uc.logger.Infow("lead recorded", "lead_id", newLead.ID())
	return &SubmitLeadResult{LeadID: newLead.ID()}, nil
}
