package skills

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/httpx"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
)

type Handler struct {
	m *mediator.Mediator
}

// Register attaches /skills routes to skills and /courses routes to courses.
func Register(skills, courses *gin.RouterGroup, m *mediator.Mediator) {
	h := &Handler{m: m}

	skills.POST("", h.createSkill)
	skills.GET("", h.listSkills)
	skills.GET("/:id", h.getSkill)
	skills.PUT("/:id", h.updateSkill)
	skills.DELETE("/:id", h.deleteSkill)
	skills.GET("/:id/courses", h.skillCourses)

	courses.POST("", h.createCourse)
	courses.GET("", h.listCourses)
	courses.GET("/:id", h.getCourse)
	courses.PUT("/:id", h.updateCourse)
	courses.DELETE("/:id", h.deleteCourse)
}

func (h *Handler) createSkill(c *gin.Context) {
	var body SkillFields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	s, err := mediator.Send[CreateSkill, *Skill](c.Request.Context(), h.m, CreateSkill{SkillFields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "skill", s)
}

func (h *Handler) listSkills(c *gin.Context) {
	items, err := mediator.Send[ListSkills, []Skill](c.Request.Context(), h.m, ListSkills{})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "skills", items)
}

func (h *Handler) getSkill(c *gin.Context) {
	s, err := mediator.Send[GetSkill, *Skill](c.Request.Context(), h.m, GetSkill{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "skill", s)
}

func (h *Handler) updateSkill(c *gin.Context) {
	var body SkillFields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	s, err := mediator.Send[UpdateSkill, *Skill](c.Request.Context(), h.m, UpdateSkill{ID: c.Param("id"), SkillFields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "skill", s)
}

func (h *Handler) deleteSkill(c *gin.Context) {
	if _, err := mediator.Send[DeleteSkill, mediator.Unit](c.Request.Context(), h.m, DeleteSkill{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}

func (h *Handler) skillCourses(c *gin.Context) {
	items, err := mediator.Send[ListCourses, []Course](c.Request.Context(), h.m, ListCourses{SkillID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "courses", items)
}

func (h *Handler) createCourse(c *gin.Context) {
	var body CourseFields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	course, err := mediator.Send[CreateCourse, *Course](c.Request.Context(), h.m, CreateCourse{CourseFields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "course", course)
}

func (h *Handler) listCourses(c *gin.Context) {
	items, err := mediator.Send[ListCourses, []Course](c.Request.Context(), h.m, ListCourses{SkillID: c.Query("skill_id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "courses", items)
}

func (h *Handler) getCourse(c *gin.Context) {
	course, err := mediator.Send[GetCourse, *Course](c.Request.Context(), h.m, GetCourse{ID: c.Param("id")})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "course", course)
}

func (h *Handler) updateCourse(c *gin.Context) {
	var body CourseFields
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.BadBody(c)
		return
	}

	course, err := mediator.Send[UpdateCourse, *Course](c.Request.Context(), h.m, UpdateCourse{ID: c.Param("id"), CourseFields: body})
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "course", course)
}

func (h *Handler) deleteCourse(c *gin.Context) {
	if _, err := mediator.Send[DeleteCourse, mediator.Unit](c.Request.Context(), h.m, DeleteCourse{ID: c.Param("id")}); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}
