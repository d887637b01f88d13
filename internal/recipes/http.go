package recipes

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/httpx"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
)

type Handler struct {
	m *mediator.Mediator
}

// Register attaches recipe routes to rg.
func Register(rg *gin.RouterGroup, m *mediator.Mediator) {
	h := &Handler{m: m}

	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.POST("/:id/rating", h.rate)
	rg.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	r, err := mediator.Send[CreateRecipe, *Recipe](c.Request.Context(), h.m, CreateRecipe{Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "recipe", r)
}

func (h *Handler) list(c *gin.Context) {
	items, err := mediator.Send[ListRecipes, []Recipe](c.Request.Context(), h.m, ListRecipes{})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "recipes", items)
}

func (h *Handler) get(c *gin.Context) {
	r, err := mediator.Send[GetRecipe, *Recipe](c.Request.Context(), h.m, GetRecipe{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "recipe", r)
}

func (h *Handler) update(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	r, err := mediator.Send[UpdateRecipe, *Recipe](c.Request.Context(), h.m, UpdateRecipe{ID: c.Param("id"), Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "recipe", r)
}

type rateReq struct {
	Rating int `json:"rating"`
}

func (h *Handler) rate(c *gin.Context) {
	var body rateReq
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	r, err := mediator.Send[RateRecipe, *Recipe](c.Request.Context(), h.m, RateRecipe{ID: c.Param("id"), Rating: body.Rating})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "recipe", r)
}

func (h *Handler) delete(c *gin.Context) {
	if _, err := mediator.Send[DeleteRecipe, mediator.Unit](c.Request.Context(), h.m, DeleteRecipe{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
