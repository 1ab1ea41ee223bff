package user

import (
	"errors"
	"net/http"

	"starblog/internal/pkg/request"
	"starblog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.List)
	rg.POST("/register", h.Register)

	rg.GET("/get-user/:id", h.GetByPath)
	rg.POST("/get-user", h.GetByBody)
	rg.DELETE("/get-user", h.Delete)
	rg.PUT("/get-user", h.Rename)
}

// List handles GET /user. Passwords are never part of the payload.
func (h *Handler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Register handles POST /register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := request.BindJSON(c, &req, registerMessages); err != nil {
		response.Abort(c, err)
		return
	}

	if _, err := h.svc.Register(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "User created successfully")
}

// GetByPath handles GET /get-user/:id.
func (h *Handler) GetByPath(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Abort(c, err)
		return
	}
	h.get(c, id)
}

// GetByBody handles POST /get-user.
func (h *Handler) GetByBody(c *gin.Context) {
	var req request.IDRequest
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}
	h.get(c, req.ID)
}

func (h *Handler) get(c *gin.Context, id int64) {
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /get-user.
func (h *Handler) Delete(c *gin.Context) {
	var req request.IDRequest
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), req.ID); err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusOK, "User deleted")
}

// Rename handles PUT /get-user; only the name is editable.
func (h *Handler) Rename(c *gin.Context) {
	var req request.RenameRequest
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}

	u, err := h.svc.Rename(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Abort(c, response.NotFound("User not found"))
	case errors.Is(err, ErrEmailTaken):
		response.Abort(c, response.Conflict("Email already registered"))
	default:
		response.Abort(c, err)
	}
}
