package usecase

import (
	"sort"

	"github.com/m-mizutani/relscan/pkg/domain/model"
)

// Normalize collapses duplicate announcements and orders the result for
// output. Duplicates share (repository, version); a repository may post
// several near-duplicate notifications for one release (edited messages),
// and only the first announcement carries the authoritative timestamp, so
// the record with the earliest release time wins. The result is sorted by
// release time, most recent first, with a deterministic tie-break.
func Normalize(records []model.Release) []model.Release {
	byKey := make(map[model.ReleaseKey]model.Release, len(records))
	order := make([]model.ReleaseKey, 0, len(records))

	for _, r := range records {
		key := r.Key()
		prev, ok := byKey[key]
		if !ok {
			byKey[key] = r
			order = append(order, key)
			continue
		}
		if r.ReleasedAt.Before(prev.ReleasedAt) {
			byKey[key] = r
		}
	}

	result := make([]model.Release, 0, len(order))
	for _, key := range order {
		result = append(result, byKey[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].ReleasedAt.Equal(result[j].ReleasedAt) {
			return result[i].ReleasedAt.After(result[j].ReleasedAt)
		}
		if result[i].Repository != result[j].Repository {
			return result[i].Repository < result[j].Repository
		}
		return result[i].Version < result[j].Version
	})

	return result
}
