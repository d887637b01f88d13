// Package prompts is the AI prompt library. Favorites hang off a prompt and go with it.
package prompts

import (
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
)

const maxTags = 32

type Prompt struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	FavoriteCount int       `json:"favorite_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Fields struct {
	Title    string   `json:"title" yaml:"title"`
	Body     string   `json:"body" yaml:"body"`
	Category string   `json:"category" yaml:"category"`
	Tags     []string `json:"tags" yaml:"tags"`
}

type Favorite struct {
	ID        string    `json:"id"`
	PromptID  string    `json:"prompt_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// CleanTags trims each tag, drops blanks and keeps the first spelling of case-insensitive duplicates.
func CleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

func (f Fields) Normalize() Fields {
	f.Title = strings.TrimSpace(f.Title)
	f.Body = strings.TrimSpace(f.Body)
	f.Category = strings.TrimSpace(f.Category)
	f.Tags = CleanTags(f.Tags)
	return f
}

func (f Fields) Validate() error {
	if f.Title == "" {
		return apperr.Invalid("title is required")
	}
	if f.Body == "" {
		return apperr.Invalid("body is required")
	}
	if len(f.Tags) > maxTags {
		return apperr.Invalid("at most %d tags are allowed", maxTags)
	}
	return nil
}

type CreatePrompt struct {
	Fields
}

type GetPrompt struct {
	ID string
}

// ListPrompts filters on a single tag when Tag is set.
type ListPrompts struct {
	Tag string
}

type UpdatePrompt struct {
	ID string
	Fields
}

type DeletePrompt struct {
	ID string
}

type AddFavorite struct {
	PromptID string
	Note     string
}

type ListFavorites struct {
	PromptID string
}

type RemoveFavorite struct {
	PromptID   string
	FavoriteID string
}
