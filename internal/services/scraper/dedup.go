package scraper

import (
	"github.com/ternarybob/peto/internal/common"
	"github.com/ternarybob/peto/internal/models"
)

// dedupeCandidates collapses a candidate list by contact identity, keeping
// the first-seen instance. Candidates with neither email nor profile link get
// a random key, so they are never merged with each other or anything else.
// Running this twice yields the same set as running it once.
func dedupeCandidates(candidates []models.ContactCandidate) []models.ContactCandidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]models.ContactCandidate, 0, len(candidates))

	for _, c := range candidates {
		key := c.DedupKey()
		if key == "" {
			key = common.NewDedupKey()
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// truncateCandidates bounds a list to max entries; max <= 0 yields an empty
// list
func truncateCandidates(candidates []models.ContactCandidate, max int) []models.ContactCandidate {
	if max <= 0 {
		return []models.ContactCandidate{}
	}
	if len(candidates) <= max {
		return candidates
	}
	return candidates[:max]
}
