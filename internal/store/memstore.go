// Package store holds the authoritative in-memory project set. Reads hand
// out deep copies and writes swap whole snapshots, so no caller ever
// aliases stored state.
package store

import (
	"errors"
	"sync"

	"callsheet/internal/model"
)

var ErrNotFound = errors.New("project not found")

type ProjectStore struct {
	mu       sync.RWMutex
	projects map[string]*model.ProductionProject
}

func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		projects: make(map[string]*model.ProductionProject),
	}
}

// Get returns a snapshot of the project, or ErrNotFound.
func (s *ProjectStore) Get(id string) (*model.ProductionProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p.Clone(), nil
}

// Put stores a snapshot of p under its ID, replacing any previous value.
func (s *ProjectStore) Put(p *model.ProductionProject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = p.Clone()
}

// Delete removes the project. Deleting an absent ID is a no-op.
func (s *ProjectStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, id)
}

// List returns snapshots of every stored project.
func (s *ProjectStore) List() []*model.ProductionProject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.ProductionProject, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	return out
}

// ListByOwner returns snapshots of projects owned by the given user.
func (s *ProjectStore) ListByOwner(ownerID int) []*model.ProductionProject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.ProductionProject
	for _, p := range s.projects {
		if p.OwnerID == ownerID {
			out = append(out, p.Clone())
		}
	}
	return out
}
