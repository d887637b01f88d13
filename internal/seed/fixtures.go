// Package seed loads YAML fixtures into the database.
package seed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/civil"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/anniversaries"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/compensation"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/donations"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/prompts"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/properties"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/recipes"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/skills"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/sleep"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/travel"
)

type File struct {
	Tenants []Tenant `yaml:"tenants"`
}

type Tenant struct {
	ID            string                 `yaml:"id"`
	DisplayName   string                 `yaml:"display_name"`
	Email         string                 `yaml:"email"`
	Recipes       []recipes.Fields       `yaml:"recipes"`
	Anniversaries []anniversaries.Fields `yaml:"anniversaries"`
	Donations     []donations.Fields     `yaml:"donations"`
	SleepRecords  []sleep.Fields         `yaml:"sleep_records"`
	Destinations  []travel.Fields        `yaml:"destinations"`
	Prompts       []Prompt               `yaml:"prompts"`
	Properties    []Property             `yaml:"properties"`
	Skills        []Skill                `yaml:"skills"`
	Compensations []compensation.Fields  `yaml:"compensations"`
}

// Prompt carries its favorites inline since ids only exist after loading.
type Prompt struct {
	prompts.Fields `yaml:",inline"`
	Favorites      []string `yaml:"favorites"`
}

type Property struct {
	properties.PropertyFields `yaml:",inline"`
	Leases                    []properties.LeaseFields `yaml:"leases"`
}

type Skill struct {
	skills.SkillFields `yaml:",inline"`
	Courses            []skills.CourseFields `yaml:"courses"`
}

func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

type validator interface {
	Validate() error
}

func check(path string, v validator) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Prepare normalizes every entity in place and validates it with the API rules.
// The first failure is returned with its position in the file.
func (f *File) Prepare(today civil.Date) error {
	seen := make(map[string]bool, len(f.Tenants))

	for i := range f.Tenants {
		t := &f.Tenants[i]
		at := fmt.Sprintf("tenants[%d]", i)

		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			return fmt.Errorf("%s: id is required", at)
		}
		if seen[t.ID] {
			return fmt.Errorf("%s: duplicate tenant %q", at, t.ID)
		}
		seen[t.ID] = true

		for j := range t.Recipes {
			t.Recipes[j] = t.Recipes[j].Normalize()
			if err := check(fmt.Sprintf("%s.recipes[%d]", at, j), t.Recipes[j]); err != nil {
				return err
			}
		}
		for j := range t.Anniversaries {
			t.Anniversaries[j] = t.Anniversaries[j].Normalize()
			if err := check(fmt.Sprintf("%s.anniversaries[%d]", at, j), t.Anniversaries[j]); err != nil {
				return err
			}
		}
		for j := range t.Donations {
			t.Donations[j] = t.Donations[j].Normalize(today)
			if err := check(fmt.Sprintf("%s.donations[%d]", at, j), t.Donations[j]); err != nil {
				return err
			}
		}
		for j := range t.SleepRecords {
			t.SleepRecords[j] = t.SleepRecords[j].Normalize()
			if err := check(fmt.Sprintf("%s.sleep_records[%d]", at, j), t.SleepRecords[j]); err != nil {
				return err
			}
		}
		for j := range t.Destinations {
			t.Destinations[j] = t.Destinations[j].Normalize(today)
			if err := check(fmt.Sprintf("%s.destinations[%d]", at, j), t.Destinations[j]); err != nil {
				return err
			}
		}
		for j := range t.Prompts {
			p := &t.Prompts[j]
			p.Fields = p.Fields.Normalize()
			if err := check(fmt.Sprintf("%s.prompts[%d]", at, j), p.Fields); err != nil {
				return err
			}
			for k := range p.Favorites {
				p.Favorites[k] = strings.TrimSpace(p.Favorites[k])
			}
		}
		for j := range t.Properties {
			p := &t.Properties[j]
			p.PropertyFields = p.PropertyFields.Normalize()
			if err := check(fmt.Sprintf("%s.properties[%d]", at, j), p.PropertyFields); err != nil {
				return err
			}
			for k := range p.Leases {
				l := p.Leases[k]
				if l.PropertyID != nil {
					return fmt.Errorf("%s.properties[%d].leases[%d]: property_id is implied by nesting", at, j, k)
				}
				p.Leases[k] = l.Normalize()
				if err := check(fmt.Sprintf("%s.properties[%d].leases[%d]", at, j, k), p.Leases[k]); err != nil {
					return err
				}
			}
		}
		for j := range t.Skills {
			s := &t.Skills[j]
			s.SkillFields = s.SkillFields.Normalize()
			if err := check(fmt.Sprintf("%s.skills[%d]", at, j), s.SkillFields); err != nil {
				return err
			}
			for k := range s.Courses {
				c := s.Courses[k]
				if c.SkillID != nil {
					return fmt.Errorf("%s.skills[%d].courses[%d]: skill_id is implied by nesting", at, j, k)
				}
				s.Courses[k] = c.Normalize(today)
				if err := check(fmt.Sprintf("%s.skills[%d].courses[%d]", at, j, k), s.Courses[k]); err != nil {
					return err
				}
			}
		}
		for j := range t.Compensations {
			t.Compensations[j] = t.Compensations[j].Normalize()
			if err := check(fmt.Sprintf("%s.compensations[%d]", at, j), t.Compensations[j]); err != nil {
				return err
			}
		}
	}
	return nil
}
