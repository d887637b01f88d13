package sleep

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
	rg.GET("/stats", h.stats)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

func queryRange(c *gin.Context) (Range, error) {
	from, err := httpx.QueryTime(c, "from")
	if err != nil {
		return Range{}, err
	}
	to, exclusive, err := httpx.QueryUntil(c, "to")
	if err != nil {
		return Range{}, err
	}
	return Range{From: from, To: to, ToExclusive: exclusive}, nil
}

func (h *Handler) create(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	rec, err := mediator.Send[CreateRecord, *Record](c.Request.Context(), h.m, CreateRecord{Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "sleep_record", rec)
}

func (h *Handler) list(c *gin.Context) {
	rg, err := queryRange(c)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	items, err := mediator.Send[ListRecords, []Record](c.Request.Context(), h.m, ListRecords{Range: rg})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "sleep_records", items)
}

func (h *Handler) stats(c *gin.Context) {
	rg, err := queryRange(c)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	s, err := mediator.Send[GetStats, *Stats](c.Request.Context(), h.m, GetStats{Range: rg})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "stats", s)
}

func (h *Handler) get(c *gin.Context) {
	rec, err := mediator.Send[GetRecord, *Record](c.Request.Context(), h.m, GetRecord{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "sleep_record", rec)
}

func (h *Handler) update(c *gin.Context) {
	var body Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	rec, err := mediator.Send[UpdateRecord, *Record](c.Request.Context(), h.m, UpdateRecord{ID: c.Param("id"), Fields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "sleep_record", rec)
}

func (h *Handler) delete(c *gin.Context) {
	if _, err := mediator.Send[DeleteRecord, mediator.Unit](c.Request.Context(), h.m, DeleteRecord{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
