package properties

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/httpx"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
)

type Handler struct {
	m *mediator.Mediator
}

// Register attaches /properties routes to properties and /leases routes to leases.
func Register(properties, leases *gin.RouterGroup, m *mediator.Mediator) {
	h := &Handler{m: m}

	properties.POST("", h.createProperty)
	properties.GET("", h.listProperties)
	properties.GET("/:id", h.getProperty)
	properties.PUT("/:id", h.updateProperty)
	properties.DELETE("/:id", h.deleteProperty)
	properties.GET("/:id/leases", h.propertyLeases)
	properties.POST("/:id/leases", h.createPropertyLease)

	leases.POST("", h.createLease)
	leases.GET("", h.listLeases)
	leases.GET("/:id", h.getLease)
	leases.PUT("/:id", h.updateLease)
	leases.DELETE("/:id", h.deleteLease)
}

func (h *Handler) createProperty(c *gin.Context) {
	var body PropertyFields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	p, err := mediator.Send[CreateProperty, *Property](c.Request.Context(), h.m, CreateProperty{PropertyFields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "property", p)
}

func (h *Handler) listProperties(c *gin.Context) {
	items, err := mediator.Send[ListProperties, []Property](c.Request.Context(), h.m, ListProperties{})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "properties", items)
}

func (h *Handler) getProperty(c *gin.Context) {
	p, err := mediator.Send[GetProperty, *Property](c.Request.Context(), h.m, GetProperty{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "property", p)
}

func (h *Handler) updateProperty(c *gin.Context) {
	var body PropertyFields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	p, err := mediator.Send[UpdateProperty, *Property](c.Request.Context(), h.m, UpdateProperty{ID: c.Param("id"), PropertyFields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "property", p)
}

func (h *Handler) deleteProperty(c *gin.Context) {
	if _, err := mediator.Send[DeleteProperty, mediator.Unit](c.Request.Context(), h.m, DeleteProperty{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}

func (h *Handler) propertyLeases(c *gin.Context) {
	items, err := mediator.Send[ListLeases, []Lease](c.Request.Context(), h.m, ListLeases{PropertyID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "leases", items)
}

func (h *Handler) createPropertyLease(c *gin.Context) {
	var body LeaseFields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}
	id := c.Param("id")
	body.PropertyID = &id

	l, err := mediator.Send[CreateLease, *Lease](c.Request.Context(), h.m, CreateLease{LeaseFields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "lease", l)
}

func (h *Handler) createLease(c *gin.Context) {
	var body LeaseFields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	l, err := mediator.Send[CreateLease, *Lease](c.Request.Context(), h.m, CreateLease{LeaseFields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "lease", l)
}

func (h *Handler) listLeases(c *gin.Context) {
	items, err := mediator.Send[ListLeases, []Lease](c.Request.Context(), h.m, ListLeases{PropertyID: c.Query("property_id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "leases", items)
}

func (h *Handler) getLease(c *gin.Context) {
	l, err := mediator.Send[GetLease, *Lease](c.Request.Context(), h.m, GetLease{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "lease", l)
}

func (h *Handler) updateLease(c *gin.Context) {
	var body LeaseFields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	l, err := mediator.Send[UpdateLease, *Lease](c.Request.Context(), h.m, UpdateLease{ID: c.Param("id"), LeaseFields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "lease", l)
}

func (h *Handler) deleteLease(c *gin.Context) {
	if _, err := mediator.Send[DeleteLease, mediator.Unit](c.Request.Context(), h.m, DeleteLease{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
