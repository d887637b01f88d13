// Package skills tracks skills and the courses taken to build them.
package skills

import (
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/money"
)

const (
	MinProficiency = 1
	MaxProficiency = 5

	CoursePlanned    = "planned"
	CourseInProgress = "in_progress"
	CourseCompleted  = "completed"
)

var courseStatuses = map[string]bool{CoursePlanned: true, CourseInProgress: true, CourseCompleted: true}

type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SkillFields struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Proficiency int    `json:"proficiency" yaml:"proficiency"`
}

func (f SkillFields) Normalize() SkillFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Category = strings.TrimSpace(f.Category)
	if f.Proficiency == 0 {
		f.Proficiency = MinProficiency
	}
	return f
}

func (f SkillFields) Validate() error {
	if f.Name == "" {
		return apperr.Invalid("name is required")
	}
	if f.Proficiency < MinProficiency || f.Proficiency > MaxProficiency {
		return apperr.Invalid("proficiency must be between %d and %d", MinProficiency, MaxProficiency)
	}
	return nil
}

type Course struct {
	ID          string      `json:"id"`
	SkillID     *string     `json:"skill_id"`
	Title       string      `json:"title"`
	Provider    string      `json:"provider"`
	URL         string      `json:"url"`
	Status      string      `json:"status"`
	CompletedOn *civil.Date `json:"completed_on"`
	Hours       float64     `json:"hours"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CourseFields struct {
	SkillID     *string     `json:"skill_id" yaml:"skill_id"`
	Title       string      `json:"title" yaml:"title"`
	Provider    string      `json:"provider" yaml:"provider"`
	URL         string      `json:"url" yaml:"url"`
	Status      string      `json:"status" yaml:"status"`
	CompletedOn *civil.Date `json:"completed_on" yaml:"completed_on"`
	Hours       float64     `json:"hours" yaml:"hours"`
}

// Normalize fills defaults. Completed courses always carry a completion date.
func (f CourseFields) Normalize(today civil.Date) CourseFields {
	if f.SkillID != nil {
		id := strings.TrimSpace(*f.SkillID)
		if id == "" {
			f.SkillID = nil
		} else {
			f.SkillID = &id
		}
	}
	f.Title = strings.TrimSpace(f.Title)
	f.Provider = strings.TrimSpace(f.Provider)
	f.URL = strings.TrimSpace(f.URL)
	f.Hours = money.Round(f.Hours)
	f.Status = strings.ToLower(strings.TrimSpace(f.Status))
	if f.Status == "" {
		f.Status = CoursePlanned
	}

	switch {
	case f.Status != CourseCompleted:
		f.CompletedOn = nil
	case f.CompletedOn == nil:
		d := today
		f.CompletedOn = &d
	}
	return f
}

func (f CourseFields) Validate() error {
	if f.SkillID != nil && !ids.Valid(*f.SkillID) {
		return apperr.NotFound("skill")
	}
	if f.Title == "" {
		return apperr.Invalid("title is required")
	}
	if !courseStatuses[f.Status] {
		return apperr.Invalid("status must be one of planned, in_progress, completed")
	}
	if f.Hours < 0 {
		return apperr.Invalid("hours must not be negative")
	}
	if !money.Fits(f.Hours, 8) {
		return apperr.Invalid("hours is too large")
	}
	if f.URL != "" {
		u, err := url.Parse(f.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return apperr.Invalid("url must be an absolute http(s) URL")
		}
	}
	if f.CompletedOn != nil && !f.CompletedOn.IsValid() {
		return apperr.Invalid("completed_on must be a valid date")
	}
	return nil
}

type CreateSkill struct {
	SkillFields
}

type GetSkill struct {
	ID string
}

type ListSkills struct{}

type UpdateSkill struct {
	ID string
	SkillFields
}

type DeleteSkill struct {
	ID string
}

type CreateCourse struct {
	CourseFields
}

type GetCourse struct {
	ID string
}

// ListCourses narrows to one skill when SkillID is set.
type ListCourses struct {
	SkillID string
}

type UpdateCourse struct {
	ID string
	CourseFields
}

type DeleteCourse struct {
	ID string
}
