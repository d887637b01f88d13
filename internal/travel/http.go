package travel

import (
	"errors"
	"io"

	"cloud.google.com/go/civil"
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
	rg.POST("/:id/visit", h.visit)
	rg.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	d, err := mediator.Send[CreateDestination, *Destination](c.Request.Context(), h.m, CreateDestination{Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "destination", d)
}

func (h *Handler) list(c *gin.Context) {
	items, err := mediator.Send[ListDestinations, []Destination](c.Request.Context(), h.m, ListDestinations{Status: c.Query("status")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "destinations", items)
}

func (h *Handler) get(c *gin.Context) {
	d, err := mediator.Send[GetDestination, *Destination](c.Request.Context(), h.m, GetDestination{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "destination", d)
}

func (h *Handler) update(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	d, err := mediator.Send[UpdateDestination, *Destination](c.Request.Context(), h.m, UpdateDestination{ID: c.Param("id"), Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "destination", d)
}

type visitReq struct {
	VisitedOn *civil.Date `json:"visited_on"`
}

func (h *Handler) visit(c *gin.Context) {
	var body visitReq
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		httpx.BadBody(c)
		return
	}

	d, err := mediator.Send[MarkVisited, *Destination](c.Request.Context(), h.m, MarkVisited{ID: c.Param("id"), VisitedOn: body.VisitedOn})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "destination", d)
}

func (h *Handler) delete(c *gin.Context) {
	if _, err := mediator.Send[DeleteDestination, mediator.Unit](c.Request.Context(), h.m, DeleteDestination{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
