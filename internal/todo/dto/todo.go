package dto

type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required,min=1"`
	Description string  `json:"description"`
	ParentTodo  *string `json:"parentTodo"`
	Status      string  `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETE"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=NONE LOW MEDIUM HIGH URGENT"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETE"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=NONE LOW MEDIUM HIGH URGENT"`
}

type UpdateTodoStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS COMPLETE"`
}
