package usecase

import (
	"errors"
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/varunmaharana/quick-todos-backend/internal/todo/domain"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/dto"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/repository"
	"github.com/varunmaharana/quick-todos-backend/pkg/response"
)

func newTestUsecase(t *testing.T) TodoUsecase {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Todo{}))

	return NewTodoUsecase(repository.NewGormTodoRepository(db))
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var apiErr *response.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	return apiErr.StatusCode
}

func TestCreateTodoDefaults(t *testing.T) {
	uc := newTestUsecase(t)

	todo, err := uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "Buy milk"})
	require.NoError(t, err)
	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, domain.StatusPending, todo.Status)
	assert.Equal(t, domain.PriorityNone, todo.Priority)
	assert.Equal(t, "user-1", todo.CreatedByID)
}

func TestTodoOwnershipIsolation(t *testing.T) {
	uc := newTestUsecase(t)

	todo, err := uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "Private"})
	require.NoError(t, err)

	// a foreign todo reads as not found, not forbidden
	_, err = uc.GetTodoByID("user-2", todo.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	err = uc.DeleteTodo("user-2", todo.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = uc.GetTodoByID("user-1", todo.ID)
	require.NoError(t, err)
}

func TestCreateSubTodoValidatesParent(t *testing.T) {
	uc := newTestUsecase(t)

	parent, err := uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "Parent"})
	require.NoError(t, err)

	parentID := parent.ID
	sub, err := uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "Sub", ParentTodo: &parentID})
	require.NoError(t, err)
	require.NotNil(t, sub.ParentTodoID)
	assert.Equal(t, parent.ID, *sub.ParentTodoID)

	// parent owned by someone else is rejected
	_, err = uc.CreateTodo("user-2", &dto.CreateTodoRequest{Title: "Sub", ParentTodo: &parentID})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	missing := "no-such-id"
	_, err = uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "Sub", ParentTodo: &missing})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestListTodosFilters(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "A", Status: "PENDING"})
	require.NoError(t, err)
	_, err = uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "B", Status: "COMPLETE", Priority: "HIGH"})
	require.NoError(t, err)
	_, err = uc.CreateTodo("user-2", &dto.CreateTodoRequest{Title: "C"})
	require.NoError(t, err)

	todos, total, err := uc.ListTodos("user-1", repository.TodoFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, todos, 2)

	complete := domain.StatusComplete
	todos, total, err = uc.ListTodos("user-1", repository.TodoFilter{Status: &complete, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "B", todos[0].Title)

	bogus := domain.Status("DONE")
	_, _, err = uc.ListTodos("user-1", repository.TodoFilter{Status: &bogus, Limit: 10})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestUpdateStatus(t *testing.T) {
	uc := newTestUsecase(t)

	todo, err := uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "A"})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus("user-1", todo.ID, domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)

	_, err = uc.UpdateStatus("user-1", todo.ID, domain.Status("DONE"))
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestDeleteTodoRemovesSubTodos(t *testing.T) {
	uc := newTestUsecase(t)

	parent, err := uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "Parent"})
	require.NoError(t, err)
	parentID := parent.ID
	sub, err := uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "Sub", ParentTodo: &parentID})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTodo("user-1", parent.ID))

	_, err = uc.GetTodoByID("user-1", sub.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestDeleteAllForUser(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.CreateTodo("user-1", &dto.CreateTodoRequest{Title: "A"})
	require.NoError(t, err)
	_, err = uc.CreateTodo("user-2", &dto.CreateTodoRequest{Title: "B"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAllForUser("user-1"))

	_, total, err := uc.ListTodos("user-1", repository.TodoFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, total, err = uc.ListTodos("user-2", repository.TodoFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
