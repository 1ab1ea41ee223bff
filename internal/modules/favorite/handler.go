package favorite

import (
	"errors"
	"net/http"

	"starblog/internal/domain"
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
	rg.POST("/add-favorite/:kind", h.Add)
	rg.DELETE("/favorite/:kind", h.Remove)
	rg.POST("/favorites", h.List)
}

// Add handles POST /add-favorite/{people|planet|vehicle}.
func (h *Handler) Add(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var req AddRequest
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}
	refID := req.refID(kind)
	if refID == 0 {
		response.Abort(c, response.BadRequest(request.MissingMessage(kind.RefColumn(), nil)))
		return
	}

	fav, err := h.svc.Add(c.Request.Context(), kind, req.UserID, refID)
	if err != nil {
		h.fail(c, kind, err)
		return
	}
	c.JSON(http.StatusCreated, ToResponse(fav))
}

// Remove handles DELETE /favorite/{people|planet|vehicle}.
func (h *Handler) Remove(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var req AddRequest
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}
	refID := req.refID(kind)
	if refID == 0 {
		response.Abort(c, response.BadRequest(request.MissingMessage(kind.RefColumn(), nil)))
		return
	}

	if err := h.svc.Remove(c.Request.Context(), kind, req.UserID, refID); err != nil {
		h.fail(c, kind, err)
		return
	}
	response.Message(c, http.StatusOK, "Favorite removed")
}

// List handles POST /favorites. The 201 status is part of the public contract.
func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}

	favs, err := h.svc.List(c.Request.Context(), req.UserID)
	if err != nil {
		h.fail(c, "", err)
		return
	}
	c.JSON(http.StatusCreated, ToResponses(favs))
}

func (h *Handler) kind(c *gin.Context) (domain.FavoriteKind, bool) {
	kind, ok := domain.ParseFavoriteKind(c.Param("kind"))
	if !ok {
		response.Abort(c, response.NotFound("Unknown favorite kind "+c.Param("kind")))
	}
	return kind, ok
}

func (h *Handler) fail(c *gin.Context, kind domain.FavoriteKind, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Abort(c, response.NotFound("User not found"))
	case errors.Is(err, ErrRefNotFound):
		response.Abort(c, response.NotFound(kind.Noun()+" not found"))
	case errors.Is(err, ErrAlreadyFavorite):
		response.Abort(c, response.Conflict("Favorite already exists"))
	case errors.Is(err, ErrNotFavorite):
		response.Abort(c, response.NotFound("Favorite not found"))
	default:
		response.Abort(c, err)
	}
}
