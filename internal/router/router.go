// Package router maps free-text queries to the most likely search
// domain when the caller does not name one.
package router

import (
	"strings"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// DetectDomain scores every domain by how many of its keywords occur
// as substrings of the lower-cased query. Substring containment (not
// tokenization) lets "#" and multi-word keywords match. The highest
// score wins; ties go to the earlier domain in table order, and a
// query matching nothing falls back to the default domain. Pure and
// total over all inputs.
func DetectDomain(query string) string {
	q := strings.ToLower(query)

	best := domain.DefaultDomain
	bestScore := 0
	for _, d := range domain.Domains() {
		score := 0
		for _, kw := range d.Keywords() {
			if strings.Contains(q, kw) {
				score++
			}
		}
		if score > bestScore {
			best = d.Name()
			bestScore = score
		}
	}
	return best
}
