package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"edet/internal/application"
	"edet/internal/application/facade"
	"edet/internal/domain"
)

// Handler exposes the configuration facade over HTTP
type Handler struct {
	facade *facade.ConfigurationFacade
}

// NewHandler creates a handler over the facade
func NewHandler(f *facade.ConfigurationFacade) *Handler {
	return &Handler{facade: f}
}

type organizeRequest struct {
	Files []domain.FileDescriptor `json:"files"`
}

// settingsRequest uses pointers so omitted flags keep their stored value
type settingsRequest struct {
	AutoOrganize *bool `json:"autoOrganize"`
	EnableRAG    *bool `json:"enableRag"`
	SyncDrive    *bool `json:"syncDrive"`
}

// Health reports that the server is up
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListSeminars handles GET /seminars
func (h *Handler) ListSeminars(c *gin.Context) {
	respond(c, h.facade.ListSeminars())
}

// Initialize handles POST /initialize
func (h *Handler) Initialize(c *gin.Context) {
	respond(c, h.facade.Initialize(c.Request.Context()))
}

// Status handles GET /status
func (h *Handler) Status(c *gin.Context) {
	respond(c, h.facade.GetStatus(c.Request.Context()))
}

// Connect handles POST /seminars/:id/connect
func (h *Handler) Connect(c *gin.Context) {
	id, ok := seminarID(c)
	if !ok {
		return
	}
	respond(c, h.facade.ConnectIntegration(c.Request.Context(), id))
}

// Integration handles GET /seminars/:id/integration
func (h *Handler) Integration(c *gin.Context) {
	id, ok := seminarID(c)
	if !ok {
		return
	}
	respond(c, h.facade.GetIntegration(c.Request.Context(), id))
}

// Organize handles POST /seminars/:id/resources with a {"files": [...]} body
func (h *Handler) Organize(c *gin.Context) {
	id, ok := seminarID(c)
	if !ok {
		return
	}

	var req organizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid request payload")
		return
	}
	respond(c, h.facade.OrganizeResources(c.Request.Context(), req.Files, id))
}

// GetSettings handles GET /settings
func (h *Handler) GetSettings(c *gin.Context) {
	respond(c, h.facade.LoadSettings(c.Request.Context()))
}

// PutSettings handles PUT /settings. Omitted flags keep their stored value.
func (h *Handler) PutSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid request payload")
		return
	}

	ctx := c.Request.Context()
	current := h.facade.LoadSettings(ctx)
	if !current.Success {
		respond(c, current)
		return
	}

	s := current.Data
	if req.AutoOrganize != nil {
		s.AutoOrganize = *req.AutoOrganize
	}
	if req.EnableRAG != nil {
		s.EnableRAG = *req.EnableRAG
	}
	if req.SyncDrive != nil {
		s.SyncDrive = *req.SyncDrive
	}
	respond(c, h.facade.SaveSettings(ctx, s))
}

func seminarID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "seminarID", "must be an integer")
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, field, msg string) {
	err := &application.ValidationError{Field: field, Message: msg}
	c.JSON(http.StatusBadRequest, application.Fail[struct{}](err))
}

func respond[T any](c *gin.Context, r application.Result[T]) {
	c.JSON(statusFor(r), r)
}

func statusFor[T any](r application.Result[T]) int {
	if r.Success {
		return http.StatusOK
	}
	switch r.Kind {
	case application.KindValidation:
		return http.StatusBadRequest
	case application.KindNotFound:
		return http.StatusNotFound
	case application.KindNotInitialized:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
