package lead

import "context"

type LeadRepository interface {
	Save(ctx context.Context, lead *Lead) error
	GetByID(ctx context.Context, leadID uint) (*Lead, error)
	List(ctx context.Context, limit, offset int) ([]*Lead, int64, error)
}
