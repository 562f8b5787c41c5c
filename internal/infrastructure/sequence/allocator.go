package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bureau/internal/domain/billing"
	vo "bureau/internal/domain/billing/valueobjects"
	"bureau/internal/infrastructure/persistence/models"
	"bureau/internal/shared/biztime"
	"bureau/internal/shared/constants"
	"bureau/internal/shared/db"
	"bureau/internal/shared/logger"
)

// Allocator hands out document numbers from a per-(organization, kind, year)
// counter row. The row is read FOR UPDATE, so concurrent allocations in the
// same scope serialize on the row lock and each caller gets a distinct
// sequence value. Must be called inside the transaction that persists the
// numbered document; a rollback returns the number to the counter.
//
// Counters are year-scoped: the first allocation of a new business year
// starts a fresh row at 1 instead of continuing last year's count.
type Allocator struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAllocator(database *gorm.DB, logger logger.Interface) *Allocator {
	return &Allocator{
		db:     database,
		logger: logger,
	}
}

var _ billing.NumberAllocator = (*Allocator)(nil)

func (a *Allocator) Allocate(ctx context.Context, organizationID uint, kind vo.DocumentKind) (vo.DocumentNumber, error) {
	if !db.InTransaction(ctx) {
		return vo.DocumentNumber{}, fmt.Errorf("number allocation requires a transaction")
	}

	year := biztime.BusinessYear(biztime.NowUTC())
	txDB := db.GetTxFromContext(ctx, a.db)

	var counter models.DocumentSequenceModel
	err := txDB.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("organization_id = ? AND kind = ? AND year = ?", organizationID, kind.String(), year).
		First(&counter).Error

	switch {
	case err == nil:
		// Counter exists; bump it under the lock.
	case err == gorm.ErrRecordNotFound:
		seeded, seedErr := a.seedCounter(txDB, organizationID, kind, year)
		if seedErr != nil {
			return vo.DocumentNumber{}, seedErr
		}
		counter = *seeded
	default:
		return vo.DocumentNumber{}, fmt.Errorf("failed to load sequence counter: %w", err)
	}

	next := counter.LastSeq + 1
	result := txDB.
		Model(&models.DocumentSequenceModel{}).
		Where("organization_id = ? AND kind = ? AND year = ?", organizationID, kind.String(), year).
		Update("last_seq", next)
	if result.Error != nil {
		return vo.DocumentNumber{}, fmt.Errorf("failed to advance sequence counter: %w", result.Error)
	}

	number, err := vo.NewDocumentNumber(year, next)
	if err != nil {
		return vo.DocumentNumber{}, err
	}

	a.logger.Infow("allocated document number",
		"organization_id", organizationID,
		"kind", kind,
		"number", number.String(),
	)

	return number, nil
}

// seedCounter creates the counter row for a scope seen for the first time.
// It backfills from numbers already stored for the scope and year, so
// deployments over pre-counter data continue the sequence instead of
// reissuing taken numbers. Malformed stored numbers are skipped.
//
// A concurrent first allocation for the same scope can race on the insert;
// the loser retries the locked read and lands on the committed row.
func (a *Allocator) seedCounter(txDB *gorm.DB, organizationID uint, kind vo.DocumentKind, year int) (*models.DocumentSequenceModel, error) {
	lastSeq := a.highestStoredSequence(txDB, organizationID, kind, year)

	counter := models.DocumentSequenceModel{
		OrganizationID: organizationID,
		Kind:           kind.String(),
		Year:           year,
		LastSeq:        lastSeq,
	}

	if err := txDB.Create(&counter).Error; err != nil {
		var existing models.DocumentSequenceModel
		lockErr := txDB.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("organization_id = ? AND kind = ? AND year = ?", organizationID, kind.String(), year).
			First(&existing).Error
		if lockErr != nil {
			return nil, fmt.Errorf("failed to seed sequence counter: %w", err)
		}
		return &existing, nil
	}

	return &counter, nil
}

func (a *Allocator) highestStoredSequence(txDB *gorm.DB, organizationID uint, kind vo.DocumentKind, year int) int {
	table := constants.TableQuotes
	if kind == vo.KindInvoice {
		table = constants.TableInvoices
	}

	var numbers []string
	if err := txDB.
		Table(table).
		Where("organization_id = ? AND number LIKE ?", organizationID, fmt.Sprintf("%d-%%", year)).
		Pluck("number", &numbers).Error; err != nil {
		a.logger.Warnw("failed to scan stored numbers for backfill",
			"organization_id", organizationID,
			"kind", kind,
			"error", err,
		)
		return 0
	}

	highest := 0
	for _, raw := range numbers {
		parsed, err := vo.ParseDocumentNumber(raw)
		if err != nil || parsed.Year() != year {
			continue
		}
		if parsed.Sequence() > highest {
			highest = parsed.Sequence()
		}
	}
	return highest
}
