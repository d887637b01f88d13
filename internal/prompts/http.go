package prompts

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/httpx"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
)

type Handler struct {
	m *mediator.Mediator
}

func Register(rg *gin.RouterGroup, m *mediator.Mediator) {
	h := &Handler{m: m}

	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)

	rg.POST("/:id/favorites", h.addFavorite)
	rg.GET("/:id/favorites", h.listFavorites)
	rg.DELETE("/:id/favorites/:favorite_id", h.removeFavorite)
}

func (h *Handler) create(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	p, err := mediator.Send[CreatePrompt, *Prompt](c.Request.Context(), h.m, CreatePrompt{Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "prompt", p)
}

func (h *Handler) list(c *gin.Context) {
	items, err := mediator.Send[ListPrompts, []Prompt](c.Request.Context(), h.m, ListPrompts{Tag: c.Query("tag")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "prompts", items)
}

func (h *Handler) get(c *gin.Context) {
	p, err := mediator.Send[GetPrompt, *Prompt](c.Request.Context(), h.m, GetPrompt{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "prompt", p)
}

func (h *Handler) update(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	p, err := mediator.Send[UpdatePrompt, *Prompt](c.Request.Context(), h.m, UpdatePrompt{ID: c.Param("id"), Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "prompt", p)
}

func (h *Handler) delete(c *gin.Context) {
	if _, err := mediator.Send[DeletePrompt, mediator.Unit](c.Request.Context(), h.m, DeletePrompt{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}

type favoriteReq struct {
	Note string `json:"note"`
}

func (h *Handler) addFavorite(c *gin.Context) {
	var body favoriteReq
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		httpx.BadBody(c)
		return
	}

	f, err := mediator.Send[AddFavorite, *Favorite](c.Request.Context(), h.m, AddFavorite{PromptID: c.Param("id"), Note: body.Note})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "favorite", f)
}

func (h *Handler) listFavorites(c *gin.Context) {
	items, err := mediator.Send[ListFavorites, []Favorite](c.Request.Context(), h.m, ListFavorites{PromptID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "favorites", items)
}

func (h *Handler) removeFavorite(c *gin.Context) {
	req := RemoveFavorite{PromptID: c.Param("id"), FavoriteID: c.Param("favorite_id")}
	if _, err := mediator.Send[RemoveFavorite, mediator.Unit](c.Request.Context(), h.m, req); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
