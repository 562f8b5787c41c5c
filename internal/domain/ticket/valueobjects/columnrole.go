package valueobjects

import (
	"fmt"
	"strings"
)

// ColumnRole is the enumerated state-machine meaning of a kanban column,
// decoupled from its display name. The time-tracking engine keys off the
// role; renaming a column never changes timer behavior.
type ColumnRole string

const (
	RoleBacklog    ColumnRole = "backlog"
	RoleInProgress ColumnRole = "in_progress"
	RoleDone       ColumnRole = "done"
	RoleCustom     ColumnRole = "custom"
)

func (r ColumnRole) IsValid() bool {
	switch r {
	case RoleBacklog, RoleInProgress, RoleDone, RoleCustom:
		return true
	}
	return false
}

func (r ColumnRole) IsInProgress() bool {
	return r == RoleInProgress
}

func (r ColumnRole) IsDone() bool {
	return r == RoleDone
}

func (r ColumnRole) String() string {
	return string(r)
}

func ParseColumnRole(s string) (ColumnRole, error) {
	role := ColumnRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid column role: %s", s)
	}
	return role, nil
}

// DeriveColumnRole maps a legacy display name onto a role. Boards created
// before roles existed used the magic names "IN_PROGRESS" and "DONE" as
// timer triggers; this is the only place those names still matter.
func DeriveColumnRole(name string) ColumnRole {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "IN_PROGRESS", "IN PROGRESS", "DOING":
		return RoleInProgress
	case "DONE", "FINISHED", "CLOSED":
		return RoleDone
	case "TO_DO", "TODO", "BACKLOG":
		return RoleBacklog
	default:
		return RoleCustom
	}
}
