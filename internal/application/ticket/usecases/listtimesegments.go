package usecases

import (
	"context"
	"fmt"
	"time"

	"bureau/internal/domain/ticket"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type ListTimeSegmentsQuery struct {
	TicketID uint
}

type TimeSegmentView struct {
	ID        uint
	StartedAt time.Time
	EndedAt   *time.Time
	Open      bool
}

type ListTimeSegmentsResult struct {
	TicketID uint
	Segments []TimeSegmentView
}

type ListTimeSegmentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	segmentRepo ticket.TimeSegmentRepository
	logger      logger.Interface
}

func NewListTimeSegmentsUseCase(
	ticketRepo ticket.TicketRepository,
	segmentRepo ticket.TimeSegmentRepository,
	logger logger.Interface,
) *ListTimeSegmentsUseCase {
	return &ListTimeSegmentsUseCase{
		ticketRepo:  ticketRepo,
		segmentRepo: segmentRepo,
		logger:      logger,
	}
}

func (uc *ListTimeSegmentsUseCase) Execute(ctx context.Context, query ListTimeSegmentsQuery) (*ListTimeSegmentsResult, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	segments, err := uc.segmentRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewPersistenceError("failed to load time segments", err.Error())
	}

	views := make([]TimeSegmentView, 0, len(segments))
	for _, segment := range segments {
		views = append(views, TimeSegmentView{
			ID:        segment.ID(),
			StartedAt: segment.StartedAt(),
			EndedAt:   segment.EndedAt(),
			Open:      segment.IsOpen(),
		})
	}

	return &ListTimeSegmentsResult{TicketID: query.TicketID, Segments: views}, nil
}
