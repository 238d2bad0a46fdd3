package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authDelivery "github.com/varunmaharana/quick-todos-backend/internal/auth/delivery"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/domain"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/dto"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/repository"
	"github.com/varunmaharana/quick-todos-backend/internal/todo/usecase"
	"github.com/varunmaharana/quick-todos-backend/pkg/response"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoUsecase usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{todoUsecase: todoUsecase}
}

// CreateTodo creates a new todo
// POST /api/todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	user, ok := authDelivery.CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	var req dto.CreateTodoRequest
	if apiErr := response.Bind(c, &req); apiErr != nil {
		c.Error(apiErr)
		return
	}

	todo, err := h.todoUsecase.CreateTodo(user.ID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusCreated, "Todo created successfully!", todo)
}

// ListTodos returns the user's todos
// GET /api/todos?status=PENDING&priority=HIGH&parentTodo=<id>&limit=50&offset=0
func (h *TodoHandler) ListTodos(c *gin.Context) {
	user, ok := authDelivery.CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter := repository.TodoFilter{Limit: limit, Offset: offset}

	if status := c.Query("status"); status != "" {
		s := domain.Status(status)
		filter.Status = &s
	}
	if priority := c.Query("priority"); priority != "" {
		p := domain.Priority(priority)
		filter.Priority = &p
	}
	if parent := c.Query("parentTodo"); parent != "" {
		filter.ParentTodo = &parent
	}

	todos, total, err := h.todoUsecase.ListTodos(user.ID, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Todos fetched successfully!", gin.H{
		"todos": todos,
		"total": total,
	})
}

// GetTodoByID returns a specific todo
// GET /api/todos/:id
func (h *TodoHandler) GetTodoByID(c *gin.Context) {
	user, ok := authDelivery.CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	todo, err := h.todoUsecase.GetTodoByID(user.ID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Todo fetched successfully!", todo)
}

// UpdateTodo applies partial changes to a todo
// PATCH /api/todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	user, ok := authDelivery.CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	var req dto.UpdateTodoRequest
	if apiErr := response.Bind(c, &req); apiErr != nil {
		c.Error(apiErr)
		return
	}

	todo, err := h.todoUsecase.UpdateTodo(user.ID, c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Todo updated successfully!", todo)
}

// UpdateTodoStatus moves a todo to a new status
// PATCH /api/todos/:id/status
func (h *TodoHandler) UpdateTodoStatus(c *gin.Context) {
	user, ok := authDelivery.CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	var req dto.UpdateTodoStatusRequest
	if apiErr := response.Bind(c, &req); apiErr != nil {
		c.Error(apiErr)
		return
	}

	todo, err := h.todoUsecase.UpdateStatus(user.ID, c.Param("id"), domain.Status(req.Status))
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Todo status updated successfully!", todo)
}

// DeleteTodo removes a todo and its sub-todos
// DELETE /api/todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	user, ok := authDelivery.CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	if err := h.todoUsecase.DeleteTodo(user.ID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Todo deleted successfully!", nil)
}
