// Package feed merges ranked strategy outputs into one deduplicated
// list.
package feed

import "github.com/awaisio/rabtah/internal/domain/model"

// Merge concatenates lists in priority order and deduplicates by
// project id. An id that was already retained is explicitly skipped
// rather than overwritten, so the first occurrence always wins and the
// caller's priority order survives the merge. A limit <= 0 means no
// truncation.
func Merge(limit int, lists ...[]model.Project) []model.Project {
	seen := make(map[string]struct{})
	merged := make([]model.Project, 0)
	for _, list := range lists {
		for _, p := range list {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			merged = append(merged, p)
		}
	}
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
