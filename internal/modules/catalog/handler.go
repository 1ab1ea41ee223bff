package catalog

import (
	"errors"
	"net/http"

	"starblog/internal/domain"
	"starblog/internal/pkg/request"
	"starblog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves one catalog kind. R is the create-request body for T.
type Handler[T domain.CatalogEntry, R Creator[T]] struct {
	svc  *Service[T]
	kind domain.FavoriteKind
}

func NewHandler[T domain.CatalogEntry, R Creator[T]](svc *Service[T], kind domain.FavoriteKind) *Handler[T, R] {
	return &Handler[T, R]{svc: svc, kind: kind}
}

// RegisterRoutes mounts /<kind> (list, create) and /get-<kind> (read, edit,
// delete).
func (h *Handler[T, R]) RegisterRoutes(rg *gin.RouterGroup) {
	base := "/" + string(h.kind)
	rg.GET(base, h.List)
	rg.POST(base, h.Create)

	item := "/get-" + string(h.kind)
	rg.GET(item+"/:id", h.GetByPath)
	rg.POST(item, h.GetByBody)
	rg.DELETE(item, h.Delete)
	rg.PUT(item, h.Rename)
}

func (h *Handler[T, R]) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler[T, R]) Create(c *gin.Context) {
	var req R
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}

	item := req.Model()
	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler[T, R]) GetByPath(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		response.Abort(c, err)
		return
	}
	h.get(c, id)
}

func (h *Handler[T, R]) GetByBody(c *gin.Context) {
	var req request.IDRequest
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}
	h.get(c, req.ID)
}

func (h *Handler[T, R]) get(c *gin.Context, id int64) {
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler[T, R]) Delete(c *gin.Context) {
	var req request.IDRequest
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), req.ID); err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, h.kind.Noun()+" successfully deleted!")
}

// Rename looks the id up in this kind's own table and changes only the name.
func (h *Handler[T, R]) Rename(c *gin.Context) {
	var req request.RenameRequest
	if err := request.BindJSON(c, &req, nil); err != nil {
		response.Abort(c, err)
		return
	}

	item, err := h.svc.Rename(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler[T, R]) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Abort(c, response.NotFound(h.kind.Noun()+" not found"))
	case errors.Is(err, ErrNameTaken):
		response.Abort(c, response.Conflict(h.kind.Noun()+" name already exists"))
	default:
		response.Abort(c, err)
	}
}
