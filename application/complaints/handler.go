package complaints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"civictrack/common"
	"civictrack/middleware"
)

// Handler handles HTTP requests for complaints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{svc: service}
}

// RegisterRoutes registers the handler routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	complaints := api.Group("/complaints")
	{
		complaints.POST("", h.CreateComplaint)
		complaints.GET("", h.ListComplaints)
		complaints.GET("/search", h.SearchComplaint)
		complaints.PATCH("/:id/status", h.UpdateStatus)
	}
}

// bindError turns a JSON decode failure into a validation error, keeping
// the field path when the decoder reports one (wrong-type fields).
func bindError(err error) *common.AppError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return common.NewValidationError(
			fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type), typeErr.Field)
	}
	return common.NewValidationError("Invalid JSON payload", "")
}

// CreateComplaint handles POST /api/complaints.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var payload CreateComplaintPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		middleware.Error(c, bindError(err))
		return
	}

	complaint, err := h.svc.Create(c.Request.Context(), &payload)
	if err != nil {
		middleware.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

// SearchComplaint handles GET /api/complaints/search?ticket=<code>.
func (h *Handler) SearchComplaint(c *gin.Context) {
	ticket := c.Query("ticket")
	if ticket == "" {
		middleware.Error(c, common.NewValidationError("Ticket ID required", "ticket"))
		return
	}

	complaint, err := h.svc.SearchByTicket(c.Request.Context(), ticket)
	if err != nil {
		middleware.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// ListComplaints handles GET /api/complaints.
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.svc.List(c.Request.Context())
	if err != nil {
		middleware.Error(c, err)
		return
	}
	if complaints == nil {
		complaints = []common.Complaint{}
	}
	c.JSON(http.StatusOK, complaints)
}

// UpdateStatus handles PATCH /api/complaints/:id/status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middleware.Error(c, common.NewValidationError("Invalid complaint id", "id"))
		return
	}

	var payload UpdateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		middleware.Error(c, bindError(err))
		return
	}

	complaint, err := h.svc.UpdateStatus(c.Request.Context(), uint(id), &payload)
	if err != nil {
		middleware.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}
