package prompts

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type memStore struct {
	prompts   map[string]map[string]Prompt
	favorites map[string][]Favorite
}

func newMemStore() *memStore {
	return &memStore{prompts: map[string]map[string]Prompt{}, favorites: map[string][]Favorite{}}
}

func (s *memStore) bucket(ctx context.Context) (map[string]Prompt, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	if s.prompts[tid] == nil {
		s.prompts[tid] = map[string]Prompt{}
	}
	return s.prompts[tid], nil
}

func (s *memStore) withCount(p Prompt) *Prompt {
	p.FavoriteCount = len(s.favorites[p.ID])
	return &p
}

func (s *memStore) Create(ctx context.Context, f Fields) (*Prompt, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	p := Prompt{ID: ids.New(), Title: f.Title, Body: f.Body, Category: f.Category, Tags: f.Tags, CreatedAt: time.Now()}
	b[p.ID] = p
	return s.withCount(p), nil
}

func (s *memStore) Get(ctx context.Context, id string) (*Prompt, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("prompt")
	}
	return s.withCount(p), nil
}

func (s *memStore) List(ctx context.Context, tag string) ([]Prompt, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Prompt, 0, len(b))
	for _, p := range b {
		if tag == "" || hasTag(p.Tags, tag) {
			out = append(out, *s.withCount(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title) })
	return out, nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (s *memStore) Update(ctx context.Context, id string, f Fields) (*Prompt, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("prompt")
	}
	p.Title, p.Body, p.Category, p.Tags = f.Title, f.Body, f.Category, f.Tags
	b[id] = p
	return s.withCount(p), nil
}

func (s *memStore) Delete(ctx context.Context, id string) (bool, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := b[id]; !ok {
		return false, nil
	}
	delete(b, id)
	delete(s.favorites, id)
	return true, nil
}

func (s *memStore) AddFavorite(ctx context.Context, promptID, note string) (*Favorite, error) {
	if _, err := s.Get(ctx, promptID); err != nil {
		return nil, err
	}
	f := Favorite{ID: ids.New(), PromptID: promptID, Note: note, CreatedAt: time.Now()}
	s.favorites[promptID] = append(s.favorites[promptID], f)
	return &f, nil
}

func (s *memStore) ListFavorites(ctx context.Context, promptID string) ([]Favorite, error) {
	if _, err := s.Get(ctx, promptID); err != nil {
		return nil, err
	}
	return append([]Favorite{}, s.favorites[promptID]...), nil
}

func (s *memStore) RemoveFavorite(ctx context.Context, promptID, favoriteID string) (bool, error) {
	if _, err := s.Get(ctx, promptID); err != nil {
		return false, nil
	}
	favs := s.favorites[promptID]
	for i, f := range favs {
		if f.ID == favoriteID {
			s.favorites[promptID] = append(favs[:i], favs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
