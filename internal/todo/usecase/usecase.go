package usecase

import (
	"github.com/varunmaharana/quick-todos-backend/internal/todo/domain"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/dto"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/repository"
)

// TodoUsecase is the todo CRUD surface. Every operation checks that the todo
// belongs to the acting user; a foreign todo reads as not found.
type TodoUsecase interface {
	// CreateTodo creates a todo, validating the optional parent
	CreateTodo(userID string, req *dto.CreateTodoRequest) (*domain.Todo, error)

	// GetTodoByID returns one of the user's todos
	GetTodoByID(userID, todoID string) (*domain.Todo, error)

	// ListTodos returns a filtered page of the user's todos and the total count
	ListTodos(userID string, filter repository.TodoFilter) ([]*domain.Todo, int64, error)

	// UpdateTodo applies partial changes
	UpdateTodo(userID, todoID string, req *dto.UpdateTodoRequest) (*domain.Todo, error)

	// UpdateStatus moves a todo to a new status
	UpdateStatus(userID, todoID string, status domain.Status) (*domain.Todo, error)

	// DeleteTodo removes a todo together with its sub-todos
	DeleteTodo(userID, todoID string) error

	// DeleteAllForUser removes every todo the user owns
	DeleteAllForUser(userID string) error
}
