package skills

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type Store interface {
	CreateSkill(ctx context.Context, f SkillFields) (*Skill, error)
	GetSkill(ctx context.Context, id string) (*Skill, error)
	ListSkills(ctx context.Context) ([]Skill, error)
	UpdateSkill(ctx context.Context, id string, f SkillFields) (*Skill, error)
	DeleteSkill(ctx context.Context, id string) (bool, error)

	CreateCourse(ctx context.Context, f CourseFields) (*Course, error)
	GetCourse(ctx context.Context, id string) (*Course, error)
	ListCourses(ctx context.Context, skillID string) ([]Course, error)
	UpdateCourse(ctx context.Context, id string, f CourseFields) (*Course, error)
	DeleteCourse(ctx context.Context, id string) (bool, error)
}

var _ Store = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const (
	skillColumns  = `id, name, category, proficiency, created_at, updated_at`
	courseColumns = `id, skill_id, title, provider, url, status, completed_on, hours, created_at, updated_at`
)

func scanSkill(row postgres.Scanner) (*Skill, error) {
	var s Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanCourse(row postgres.Scanner) (*Course, error) {
	var c Course
	var skillID sql.NullString
	var completed sql.NullTime
	if err := row.Scan(&c.ID, &skillID, &c.Title, &c.Provider, &c.URL, &c.Status, &completed, &c.Hours,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.SkillID = postgres.StringPtr(skillID)
	c.CompletedOn = postgres.DatePtr(completed)
	return &c, nil
}

func skillNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) || postgres.IsForeignKeyViolation(err) {
		return apperr.NotFound("skill")
	}
	return err
}

func courseNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("course")
	}
	return err
}

func (r *Repo) CreateSkill(ctx context.Context, f SkillFields) (*Skill, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
insert into skills (id, tenant_id, name, category, proficiency)
values ($1, $2, $3, $4, $5)
returning ` + skillColumns
	s, err := scanSkill(r.db.QueryRowContext(ctx, q, ids.New(), tid, f.Name, f.Category, f.Proficiency))
	if err != nil {
		return nil, fmt.Errorf("insert skill: %w", err)
	}
	return s, nil
}

func (r *Repo) GetSkill(ctx context.Context, id string) (*Skill, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	s, err := scanSkill(r.db.QueryRowContext(ctx, `select `+skillColumns+` from skills where tenant_id = $1 and id = $2`, tid, id))
	if err != nil {
		return nil, skillNotFound(err)
	}
	return s, nil
}

func (r *Repo) ListSkills(ctx context.Context) ([]Skill, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `select `+skillColumns+` from skills where tenant_id = $1 order by lower(name)`, tid)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	out := make([]Skill, 0, 16)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateSkill(ctx context.Context, id string, f SkillFields) (*Skill, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
update skills
set name = $3, category = $4, proficiency = $5, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + skillColumns
	s, err := scanSkill(r.db.QueryRowContext(ctx, q, tid, id, f.Name, f.Category, f.Proficiency))
	if err != nil {
		return nil, skillNotFound(err)
	}
	return s, nil
}

// DeleteSkill removes the skill. Its courses stay with skill_id cleared.
func (r *Repo) DeleteSkill(ctx context.Context, id string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from skills where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete skill: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func lockSkill(ctx context.Context, tx *sql.Tx, tid string, id *string) error {
	if id == nil {
		return nil
	}
	var ok string
	err := tx.QueryRowContext(ctx, `
select id
from skills
where tenant_id = $1
  and id = $2
for share
`, tid, *id).Scan(&ok)
	if err != nil {
		return skillNotFound(err)
	}
	return nil
}

func (r *Repo) CreateCourse(ctx context.Context, f CourseFields) (*Course, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := lockSkill(ctx, tx, tid, f.SkillID); err != nil {
		return nil, err
	}

	q := `
insert into courses (id, tenant_id, skill_id, title, provider, url, status, completed_on, hours)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
returning ` + courseColumns
	c, err := scanCourse(tx.QueryRowContext(ctx, q, ids.New(), tid, postgres.NullString(f.SkillID), f.Title, f.Provider,
		f.URL, f.Status, postgres.NullDate(f.CompletedOn), f.Hours))
	if err != nil {
		return nil, skillNotFound(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repo) GetCourse(ctx context.Context, id string) (*Course, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	c, err := scanCourse(r.db.QueryRowContext(ctx, `select `+courseColumns+` from courses where tenant_id = $1 and id = $2`, tid, id))
	if err != nil {
		return nil, courseNotFound(err)
	}
	return c, nil
}

func (r *Repo) ListCourses(ctx context.Context, skillID string) ([]Course, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `select ` + courseColumns + ` from courses where tenant_id = $1`
	args := []any{tid}
	if skillID != "" {
		q += ` and skill_id = $2`
		args = append(args, skillID)
	}
	q += ` order by case status when 'in_progress' then 0 when 'planned' then 1 else 2 end, lower(title)`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	out := make([]Course, 0, 16)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateCourse(ctx context.Context, id string, f CourseFields) (*Course, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := lockSkill(ctx, tx, tid, f.SkillID); err != nil {
		return nil, err
	}

	q := `
update courses
set skill_id = $3, title = $4, provider = $5, url = $6, status = $7, completed_on = $8, hours = $9, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + courseColumns
	c, err := scanCourse(tx.QueryRowContext(ctx, q, tid, id, postgres.NullString(f.SkillID), f.Title, f.Provider,
		f.URL, f.Status, postgres.NullDate(f.CompletedOn), f.Hours))
	if err != nil {
		return nil, courseNotFound(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repo) DeleteCourse(ctx context.Context, id string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from courses where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete course: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
