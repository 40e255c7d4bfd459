// Package repository defines the project catalog interface and its
// in-memory implementation. The catalog is the process-local mirror of
// the external opportunity store; the ranking engine never touches it
// directly and only ever sees the snapshots handed out here.
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/awaisio/rabtah/internal/domain/model"
	"github.com/awaisio/rabtah/pkg/metrics"
)

// Default catalog configuration constants.
const (
	defaultInitialCapacity = 256
)

// Catalog provides read/write access to the known projects.
type Catalog interface {
	// Upsert inserts or replaces a project by id. Returns true when the
	// project was newly created.
	Upsert(ctx context.Context, p model.Project) (bool, error)

	// Get returns the project with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (model.Project, error)

	// Remove deletes a project by id.
	// Returns ErrNotFound if the id is unknown.
	Remove(ctx context.Context, id string) error

	// Snapshot returns a copy of all projects in insertion order. The
	// returned slice is owned by the caller.
	Snapshot(ctx context.Context) []model.Project

	// Count returns the number of projects held.
	Count(ctx context.Context) int
}

// memoryCatalog implements Catalog with a mutex-guarded map plus a
// stable insertion order for snapshots.
type memoryCatalog struct {
	mu    sync.RWMutex
	byID  map[string]model.Project
	order []string
}

// NewMemoryCatalog creates an in-memory catalog with configuration
// options.
func NewMemoryCatalog(opts ...Option) Catalog {
	c := &memoryCatalog{
		byID:  make(map[string]model.Project, defaultInitialCapacity),
		order: make([]string, 0, defaultInitialCapacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upsert inserts or replaces a project by id.
func (c *memoryCatalog) Upsert(_ context.Context, p model.Project) (bool, error) {
	if p.ID == "" {
		return false, fmt.Errorf("upsert project: %w", ErrMissingID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, exists := c.byID[p.ID]
	c.byID[p.ID] = p
	if !exists {
		c.order = append(c.order, p.ID)
	}
	metrics.UpdateCatalogSize(len(c.byID))
	return !exists, nil
}

// Get returns the project with the given id.
func (c *memoryCatalog) Get(_ context.Context, id string) (model.Project, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byID[id]
	if !ok {
		return model.Project{}, fmt.Errorf("get project %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// Remove deletes a project by id.
func (c *memoryCatalog) Remove(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return fmt.Errorf("remove project %q: %w", id, ErrNotFound)
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	metrics.UpdateCatalogSize(len(c.byID))
	return nil
}

// Snapshot returns a copy of all projects in insertion order.
func (c *memoryCatalog) Snapshot(_ context.Context) []model.Project {
	start := time.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Project, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	metrics.RecordSnapshotLatency(float64(time.Since(start).Microseconds()) / 1000.0)
	return out
}

// Count returns the number of projects held.
func (c *memoryCatalog) Count(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}
