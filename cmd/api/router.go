package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/varunmaharana/quick-todos-backend/internal/auth/delivery"
	authUsecase "github.com/varunmaharana/quick-todos-backend/internal/auth/usecase"
	todoDelivery "github.com/varunmaharana/quick-todos-backend/internal/todo/delivery"
	todoUsecase "github.com/varunmaharana/quick-todos-backend/internal/todo/usecase"
	"github.com/varunmaharana/quick-todos-backend/pkg/config"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, todoUc todoUsecase.TodoUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc, cfg)
	todoHandler := todoDelivery.NewTodoHandler(todoUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes
		users := api.Group("/users")
		{
			users.POST("/signUp", authHandler.SignUp)
			users.POST("/login", authHandler.Login)
			users.POST("/refreshToken", authHandler.RefreshToken)
			users.POST("/logout", delivery.AuthMiddleware(authUc), authHandler.Logout)
			users.GET("/getLoggedInUserDetails", delivery.AuthMiddleware(authUc), authHandler.Me)
			users.PATCH("/updateUserDetails", delivery.AuthMiddleware(authUc), authHandler.UpdateProfile)
			users.POST("/changeUserPassword", delivery.AuthMiddleware(authUc), authHandler.ChangePassword)
			users.DELETE("/deleteUserDetails", delivery.AuthMiddleware(authUc), authHandler.DeleteAccount)
		}

		// Todo routes (protected)
		todos := api.Group("/todos")
		todos.Use(delivery.AuthMiddleware(authUc))
		{
			todos.POST("", todoHandler.CreateTodo)
			todos.GET("", todoHandler.ListTodos)
			todos.GET("/:id", todoHandler.GetTodoByID)
			todos.PATCH("/:id", todoHandler.UpdateTodo)
			todos.PATCH("/:id/status", todoHandler.UpdateTodoStatus)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}
	}
}
