package skills

import (
	"context"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
)

type handlers struct {
	store Store
	now   func() time.Time
}

// RegisterHandlers binds skill and course requests to m. now may be nil.
func RegisterHandlers(m *mediator.Mediator, store Store, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	h := &handlers{store: store, now: now}
	mediator.RegisterFunc(m, h.createSkill)
	mediator.RegisterFunc(m, h.getSkill)
	mediator.RegisterFunc(m, h.listSkills)
	mediator.RegisterFunc(m, h.updateSkill)
	mediator.RegisterFunc(m, h.deleteSkill)

	mediator.RegisterFunc(m, h.createCourse)
	mediator.RegisterFunc(m, h.getCourse)
	mediator.RegisterFunc(m, h.listCourses)
	mediator.RegisterFunc(m, h.updateCourse)
	mediator.RegisterFunc(m, h.deleteCourse)
}

func (h *handlers) today() civil.Date {
	return civil.DateOf(h.now())
}

func (h *handlers) createSkill(ctx context.Context, req CreateSkill) (*Skill, error) {
	f := req.SkillFields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.CreateSkill(ctx, f)
}

func (h *handlers) getSkill(ctx context.Context, req GetSkill) (*Skill, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("skill")
	}
	return h.store.GetSkill(ctx, req.ID)
}

func (h *handlers) listSkills(ctx context.Context, _ ListSkills) ([]Skill, error) {
	return h.store.ListSkills(ctx)
}

func (h *handlers) updateSkill(ctx context.Context, req UpdateSkill) (*Skill, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("skill")
	}
	f := req.SkillFields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.UpdateSkill(ctx, req.ID, f)
}

func (h *handlers) deleteSkill(ctx context.Context, req DeleteSkill) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("skill")
	}
	ok, err := h.store.DeleteSkill(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("skill")
	}
	return mediator.Unit{}, nil
}

func (h *handlers) createCourse(ctx context.Context, req CreateCourse) (*Course, error) {
	f := req.CourseFields.Normalize(h.today())
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.CreateCourse(ctx, f)
}

func (h *handlers) getCourse(ctx context.Context, req GetCourse) (*Course, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("course")
	}
	return h.store.GetCourse(ctx, req.ID)
}

func (h *handlers) listCourses(ctx context.Context, req ListCourses) ([]Course, error) {
	if req.SkillID != "" {
		if !ids.Valid(req.SkillID) {
			return nil, apperr.NotFound("skill")
		}
		if _, err := h.store.GetSkill(ctx, req.SkillID); err != nil {
			return nil, err
		}
	}
	return h.store.ListCourses(ctx, req.SkillID)
}

func (h *handlers) updateCourse(ctx context.Context, req UpdateCourse) (*Course, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("course")
	}
	f := req.CourseFields.Normalize(h.today())
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.UpdateCourse(ctx, req.ID, f)
}

func (h *handlers) deleteCourse(ctx context.Context, req DeleteCourse) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("course")
	}
	ok, err := h.store.DeleteCourse(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("course")
	}
	return mediator.Unit{}, nil
}
