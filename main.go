package main

import (
	"log"

	api "github.com/varunmaharana/quick-todos-backend/cmd/api"
	authdomain "github.com/varunmaharana/quick-todos-backend/internal/auth/domain"
	authRepo "github.com/varunmaharana/quick-todos-backend/internal/auth/repository"
	"github.com/varunmaharana/quick-todos-backend/internal/auth/token"
	authUsecase "github.com/varunmaharana/quick-todos-backend/internal/auth/usecase"
	tododomain "github.com/varunmaharana/quick-todos-backend/internal/todo/domain"
	todoRepo "github.com/varunmaharana/quick-todos-backend/internal/todo/repository"
	todoUsecase "github.com/varunmaharana/quick-todos-backend/internal/todo/usecase"
	"github.com/varunmaharana/quick-todos-backend/pkg/config"
	"github.com/varunmaharana/quick-todos-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &tododomain.Todo{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewGormUserRepository(db)
	todoRepository := todoRepo.NewGormTodoRepository(db)

	// Initialize use cases
	issuer := token.NewIssuer(cfg)
	authUc := authUsecase.NewAuthUsecase(userRepository, issuer)
	todoUc := todoUsecase.NewTodoUsecase(todoRepository)

	// Deleting an account also removes the todos it owns
	authUc.SetAccountCleanup(todoUc.DeleteAllForUser)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, todoUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
