package compensation

import (
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
}

func (h *Handler) create(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	comp, err := mediator.Send[CreateCompensation, *Compensation](c.Request.Context(), h.m, CreateCompensation{Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "compensation", comp)
}

func (h *Handler) list(c *gin.Context) {
	items, err := mediator.Send[ListCompensations, []Compensation](c.Request.Context(), h.m, ListCompensations{})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "compensations", items)
}

func (h *Handler) get(c *gin.Context) {
	comp, err := mediator.Send[GetCompensation, *Compensation](c.Request.Context(), h.m, GetCompensation{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "compensation", comp)
}

func (h *Handler) update(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	comp, err := mediator.Send[UpdateCompensation, *Compensation](c.Request.Context(), h.m, UpdateCompensation{ID: c.Param("id"), Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "compensation", comp)
}

func (h *Handler) delete(c *gin.Context) {
	if _, err := mediator.Send[DeleteCompensation, mediator.Unit](c.Request.Context(), h.m, DeleteCompensation{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
