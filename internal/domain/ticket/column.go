package ticket

import (
	"fmt"

	vo "bureau/internal/domain/ticket/valueobjects"
)

// KanbanColumn is a column of a project board. Its display name is free
// text; the enumerated role is what the time-tracking engine reacts to.
type KanbanColumn struct {
	id        uint
	projectID uint
	name      string
	role      vo.ColumnRole
	position  int
	isDefault bool
}

func NewKanbanColumn(projectID uint, name string, role vo.ColumnRole, position int, isDefault bool) (*KanbanColumn, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("column name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("column name exceeds maximum length of 100 characters")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid column role: %s", role)
	}
	if position < 0 {
		return nil, fmt.Errorf("column position cannot be negative")
	}

	return &KanbanColumn{
		projectID: projectID,
		name:      name,
		role:      role,
		position:  position,
		isDefault: isDefault,
	}, nil
}

func ReconstructKanbanColumn(id, projectID uint, name string, role vo.ColumnRole, position int, isDefault bool) (*KanbanColumn, error) {
	if id == 0 {
		return nil, fmt.Errorf("column ID cannot be zero")
	}
	column, err := NewKanbanColumn(projectID, name, role, position, isDefault)
	if err != nil {
		return nil, err
	}
	column.id = id
	return column, nil
}

func (c *KanbanColumn) ID() uint {
	return c.id
}

func (c *KanbanColumn) ProjectID() uint {
	return c.projectID
}

func (c *KanbanColumn) Name() string {
	return c.name
}

func (c *KanbanColumn) Role() vo.ColumnRole {
	return c.role
}

func (c *KanbanColumn) Position() int {
	return c.position
}

func (c *KanbanColumn) IsDefault() bool {
	return c.isDefault
}

func (c *KanbanColumn) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("column ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("column ID cannot be zero")
	}
	c.id = id
	return nil
}

// BelongsToProject reports whether the column is part of the given project.
// A ticket may only ever reference columns of its own project.
func (c *KanbanColumn) BelongsToProject(projectID uint) bool {
	return c.projectID == projectID
}
