// Package repository defines the project catalog interface and its
// in-memory implementation.
package repository

import "github.com/awaisio/rabtah/internal/domain/model"

// Option applies a configuration option to the memory catalog.
type Option func(*memoryCatalog)

// WithInitialProjects pre-populates the catalog, preserving order.
// Projects without an id are skipped.
func WithInitialProjects(projects []model.Project) Option {
	return func(c *memoryCatalog) {
		for _, p := range projects {
			if p.ID == "" {
				continue
			}
			if _, ok := c.byID[p.ID]; !ok {
				c.order = append(c.order, p.ID)
			}
			c.byID[p.ID] = p
		}
	}
}
