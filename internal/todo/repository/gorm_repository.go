package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/varunmaharana/quick-todos-backend/internal/todo/domain"
)

// gormTodoRepository implements TodoRepository using GORM
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM-based TodoRepository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(todo *domain.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = time.Now()
	return r.db.Create(todo).Error
}

func (r *gormTodoRepository) FindByID(id string) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.Where("id = ?", id).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *gormTodoRepository) FindByUser(userID string, filter TodoFilter) ([]*domain.Todo, int64, error) {
	var todos []*domain.Todo
	var total int64

	query := r.db.Model(&domain.Todo{}).Where("created_by_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.ParentTodo != nil {
		query = query.Where("parent_todo_id = ?", *filter.ParentTodo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).Find(&todos).Error

	return todos, total, err
}

func (r *gormTodoRepository) Update(todo *domain.Todo) error {
	todo.UpdatedAt = time.Now()
	return r.db.Save(todo).Error
}

func (r *gormTodoRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_todo_id = ?", id).Delete(&domain.Todo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Todo{}, "id = ?", id).Error
	})
}

func (r *gormTodoRepository) DeleteByUser(userID string) error {
	return r.db.Where("created_by_id = ?", userID).Delete(&domain.Todo{}).Error
}
