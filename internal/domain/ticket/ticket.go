package ticket

import (
	"fmt"
	"time"

	vo "bureau/internal/domain/ticket/valueobjects"
)

// Ticket is a work item on a project board. Its column reference always
// points at a column of the owning project; MoveToColumn enforces that.
type Ticket struct {
	id                uint
	projectID         uint
	columnID          uint
	title             string
	description       string
	priority          vo.Priority
	estimationMinutes *int
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewTicket(projectID, columnID uint, title, description string, priority vo.Priority, estimationMinutes *int) (*Ticket, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if columnID == 0 {
		return nil, fmt.Errorf("column ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if estimationMinutes != nil && *estimationMinutes < 0 {
		return nil, fmt.Errorf("estimation cannot be negative")
	}

	now := time.Now().UTC()
	return &Ticket{
		projectID:         projectID,
		columnID:          columnID,
		title:             title,
		description:       description,
		priority:          priority,
		estimationMinutes: estimationMinutes,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructTicket(
	id uint,
	projectID uint,
	columnID uint,
	title string,
	description string,
	priority vo.Priority,
	estimationMinutes *int,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if columnID == 0 {
		return nil, fmt.Errorf("column ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:                id,
		projectID:         projectID,
		columnID:          columnID,
		title:             title,
		description:       description,
		priority:          priority,
		estimationMinutes: estimationMinutes,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) ProjectID() uint {
	return t.projectID
}

func (t *Ticket) ColumnID() uint {
	return t.columnID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) EstimationMinutes() *int {
	return t.estimationMinutes
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// MoveToColumn points the ticket at a new column of its own project.
// Moving to a column of another project is an invalid transition.
func (t *Ticket) MoveToColumn(column *KanbanColumn) error {
	if column == nil {
		return fmt.Errorf("column is required")
	}
	if !column.BelongsToProject(t.projectID) {
		return fmt.Errorf("column %d does not belong to project %d", column.ID(), t.projectID)
	}

	t.columnID = column.ID()
	t.updatedAt = time.Now().UTC()
	t.version++

	return nil
}

// ChangePriority updates the ticket priority.
func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now().UTC()
	t.version++

	return nil
}
