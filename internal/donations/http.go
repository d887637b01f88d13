package donations

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
	rg.GET("/summary", h.summary)
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

	d, err := mediator.Send[CreateDonation, *Donation](c.Request.Context(), h.m, CreateDonation{Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "donation", d)
}

func (h *Handler) list(c *gin.Context) {
	year, err := httpx.QueryInt(c, "year", 0)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	items, err := mediator.Send[ListDonations, []Donation](c.Request.Context(), h.m, ListDonations{Year: year})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "donations", items)
}

func (h *Handler) summary(c *gin.Context) {
	year, err := httpx.QueryInt(c, "year", 0)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	s, err := mediator.Send[GetSummary, *Summary](c.Request.Context(), h.m, GetSummary{Year: year})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "summary", s)
}

func (h *Handler) get(c *gin.Context) {
	d, err := mediator.Send[GetDonation, *Donation](c.Request.Context(), h.m, GetDonation{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "donation", d)
}

func (h *Handler) update(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	d, err := mediator.Send[UpdateDonation, *Donation](c.Request.Context(), h.m, UpdateDonation{ID: c.Param("id"), Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "donation", d)
}

func (h *Handler) delete(c *gin.Context) {
	if _, err := mediator.Send[DeleteDonation, mediator.Unit](c.Request.Context(), h.m, DeleteDonation{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
