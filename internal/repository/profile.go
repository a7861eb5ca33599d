package repository

import (
	"context"
	"sync"

	"github.com/atln0/GigBooker/internal/domain"
)

// ProfileRepository stores the single DJ profile. It is seeded with the
// default profile so every view renders before the first save.
type ProfileRepository struct {
	mu      sync.RWMutex
	profile *domain.DJProfile
}

func NewProfileRepo() *ProfileRepository {
	return &ProfileRepository{profile: domain.DefaultProfile()}
}

func (r *ProfileRepository) Get(_ context.Context) (*domain.DJProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneProfile(r.profile), nil
}

// Save replaces the profile whole; partial field updates do not exist.
func (r *ProfileRepository) Save(_ context.Context, p *domain.DJProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = cloneProfile(p)
	return nil
}

func cloneProfile(p *domain.DJProfile) *domain.DJProfile {
	c := *p
	c.TechRider = append([]domain.TechItem(nil), p.TechRider...)
	c.Schedule = append([]domain.GigItem(nil), p.Schedule...)
	c.Extras = append([]domain.ExtraItem(nil), p.Extras...)
	c.Genres = make([]domain.GenreItem, len(p.Genres))
	for i, g := range p.Genres {
		g.Links = append([]string(nil), g.Links...)
		c.Genres[i] = g
	}
	return &c
}
