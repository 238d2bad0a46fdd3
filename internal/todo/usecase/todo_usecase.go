package usecase

import (
	"github.com/varunmaharana/quick-todos-backend/internal/todo/domain"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/dto"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/repository"
	"github.com/varunmaharana/quick-todos-backend/pkg/response"
)

// todoUsecase implements TodoUsecase
type todoUsecase struct {
	todoRepo repository.TodoRepository
}

// NewTodoUsecase creates a new instance of todoUsecase
func NewTodoUsecase(todoRepo repository.TodoRepository) TodoUsecase {
	return &todoUsecase{todoRepo: todoRepo}
}

func (u *todoUsecase) CreateTodo(userID string, req *dto.CreateTodoRequest) (*domain.Todo, error) {
	todo := &domain.Todo{
		Title:       req.Title,
		Description: req.Description,
		CreatedByID: userID,
		Status:      domain.StatusPending,
		Priority:    domain.PriorityNone,
	}
	if req.Status != "" {
		todo.Status = domain.Status(req.Status)
	}
	if req.Priority != "" {
		todo.Priority = domain.Priority(req.Priority)
	}

	if req.ParentTodo != nil && *req.ParentTodo != "" {
		// the parent must exist and belong to the same user
		parent, err := u.ownedTodo(userID, *req.ParentTodo)
		if err != nil {
			return nil, err
		}
		todo.ParentTodoID = &parent.ID
	}

	if err := u.todoRepo.Create(todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (u *todoUsecase) GetTodoByID(userID, todoID string) (*domain.Todo, error) {
	return u.ownedTodo(userID, todoID)
}

func (u *todoUsecase) ListTodos(userID string, filter repository.TodoFilter) ([]*domain.Todo, int64, error) {
	if filter.Status != nil && !domain.ValidStatus(*filter.Status) {
		return nil, 0, response.NewBadRequest("Invalid status filter!")
	}
	if filter.Priority != nil && !domain.ValidPriority(*filter.Priority) {
		return nil, 0, response.NewBadRequest("Invalid priority filter!")
	}
	return u.todoRepo.FindByUser(userID, filter)
}

func (u *todoUsecase) UpdateTodo(userID, todoID string, req *dto.UpdateTodoRequest) (*domain.Todo, error) {
	todo, err := u.ownedTodo(userID, todoID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = *req.Description
	}
	if req.Status != nil {
		todo.Status = domain.Status(*req.Status)
	}
	if req.Priority != nil {
		todo.Priority = domain.Priority(*req.Priority)
	}

	if err := u.todoRepo.Update(todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (u *todoUsecase) UpdateStatus(userID, todoID string, status domain.Status) (*domain.Todo, error) {
	if !domain.ValidStatus(status) {
		return nil, response.NewBadRequest("Invalid status!")
	}

	todo, err := u.ownedTodo(userID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Status = status
	if err := u.todoRepo.Update(todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (u *todoUsecase) DeleteTodo(userID, todoID string) error {
	if _, err := u.ownedTodo(userID, todoID); err != nil {
		return err
	}
	return u.todoRepo.Delete(todoID)
}

func (u *todoUsecase) DeleteAllForUser(userID string) error {
	return u.todoRepo.DeleteByUser(userID)
}

// ownedTodo loads a todo and checks ownership. A todo owned by someone else
// reads as not found so existence does not leak across users.
func (u *todoUsecase) ownedTodo(userID, todoID string) (*domain.Todo, error) {
	todo, err := u.todoRepo.FindByID(todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil || todo.CreatedByID != userID {
		return nil, response.NewNotFound("Todo not found!")
	}
	return todo, nil
}
