package anniversaries

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
	rg.GET("/upcoming", h.upcoming)
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

	a, err := mediator.Send[CreateAnniversary, *Anniversary](c.Request.Context(), h.m, CreateAnniversary{Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "anniversary", a)
}

func (h *Handler) list(c *gin.Context) {
	items, err := mediator.Send[ListAnniversaries, []Anniversary](c.Request.Context(), h.m, ListAnniversaries{})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "anniversaries", items)
}

func (h *Handler) upcoming(c *gin.Context) {
	days, err := httpx.QueryInt(c, "days", DefaultUpcomingDays)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	items, err := mediator.Send[ListUpcoming, []Upcoming](c.Request.Context(), h.m, ListUpcoming{Days: days})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "upcoming", items)
}

func (h *Handler) get(c *gin.Context) {
	a, err := mediator.Send[GetAnniversary, *Anniversary](c.Request.Context(), h.m, GetAnniversary{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "anniversary", a)
}

func (h *Handler) update(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	a, err := mediator.Send[UpdateAnniversary, *Anniversary](c.Request.Context(), h.m, UpdateAnniversary{ID: c.Param("id"), Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "anniversary", a)
}

func (h *Handler) delete(c *gin.Context) {
	if _, err := mediator.Send[DeleteAnniversary, mediator.Unit](c.Request.Context(), h.m, DeleteAnniversary{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
