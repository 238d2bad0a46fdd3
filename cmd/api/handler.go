package api

import (
	"log"

	"github.com/gin-gonic/gin"

	authUsecase "github.com/varunmaharana/quick-todos-backend/internal/auth/usecase"
	todoUsecase "github.com/varunmaharana/quick-todos-backend/internal/todo/usecase"
	"github.com/varunmaharana/quick-todos-backend/pkg/config"
	"github.com/varunmaharana/quick-todos-backend/pkg/response"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	todoUsecase todoUsecase.TodoUsecase
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, todoUc todoUsecase.TodoUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		todoUsecase: todoUc,
		config:      cfg,
	}
}

// Engine builds the configured gin engine. Split from Start so tests can
// drive the full middleware and routing stack through httptest.
func (h *Handler) Engine() *gin.Engine {
	if !h.config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := response.RegisterValidations(); err != nil {
		log.Printf("[WARN] Failed to register custom validations: %v", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := h.config.CORSOrigin
		if origin == "" {
			origin = c.Request.Header.Get("Origin")
		}
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Centralized domain-error translation into the response envelope
	r.Use(response.ErrorHandler(h.config.IsDevelopment()))

	SetupRoutes(r, h.authUsecase, h.todoUsecase, h.config)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
