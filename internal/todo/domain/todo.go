package domain

import "time"

// Status represents the completion state of a todo
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusComplete   Status = "COMPLETE"
)

// Priority represents todo priority level
type Priority string

const (
	PriorityNone   Priority = "NONE"
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Todo is a task item owned by a user. A todo may nest under a parent,
// forming one level of sub-todos.
type Todo struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"index;not null"`
	Description  string    `json:"description,omitempty"`
	ParentTodoID *string   `json:"parent_todo,omitempty" gorm:"index"`
	CreatedByID  string    `json:"created_by" gorm:"index;not null"`
	Status       Status    `json:"status" gorm:"default:PENDING"`
	Priority     Priority  `json:"priority" gorm:"default:NONE"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
