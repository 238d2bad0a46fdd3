package repository

import (
	"github.com/varunmaharana/quick-todos-backend/internal/todo/domain"
)

// TodoFilter narrows a listing. Nil fields are ignored.
type TodoFilter struct {
	Status     *domain.Status
	Priority   *domain.Priority
	ParentTodo *string
	Limit      int
	Offset     int
}

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// Create persists a new todo, assigning its ID
	Create(todo *domain.Todo) error

	// FindByID finds a todo by ID, returning (nil, nil) when missing
	FindByID(id string) (*domain.Todo, error)

	// FindByUser lists a user's todos with optional filters and pagination,
	// returning the page and the total match count
	FindByUser(userID string, filter TodoFilter) ([]*domain.Todo, int64, error)

	// Update saves all fields of an existing todo
	Update(todo *domain.Todo) error

	// Delete removes a todo and its sub-todos
	Delete(id string) error

	// DeleteByUser removes every todo owned by the user
	DeleteByUser(userID string) error
}
