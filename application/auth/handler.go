package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civictrack/common"
	"civictrack/middleware"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{svc: service}
}

// RegisterRoutes registers the handler routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		middleware.Error(c, common.NewValidationError("Invalid request", ""))
		return
	}

	if err := h.svc.Login(&payload); err != nil {
		middleware.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, middleware.LoginBody{Success: true})
}
