// Package match picks the most plausible artist out of an ambiguous list of
// search hits. It is pure: no network, no state, so it can be tested
// exhaustively against awkward inputs.
package match

import (
	"regexp"
	"strings"

	"github.com/avlowe/lineup/data"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lowercases s, collapses every run of non-alphanumeric characters
// to a single space, and trims. "Sigur Rós" and "sigur ros!" normalize to the
// same string. The cache keys on this too, so "Radiohead" and "radiohead "
// share an entry.
func Normalize(s string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(s), " "))
}

// Best returns the hit whose artist name best matches query, or ok=false if
// there are no hits at all.
//
// Scoring is tiered: exact normalized match beats prefix-or-whole-word, which
// beats substring, which beats no signal. Within a tier the shorter raw name
// wins, on the theory that "U2" is a better answer for "u2" than "U2 Tribute
// Band". A nonempty hit list always produces a winner, even at tier zero:
// returning the best of a bad list beats returning nothing for obscure
// spellings.
//
// The scan keeps the first hit on a full tie, so selection is deterministic
// for a given hit order.
func Best(query string, hits []data.Hit) (data.Hit, bool) {
	if len(hits) == 0 {
		return data.Hit{}, false
	}

	q := Normalize(query)

	best, bestTier, bestLen := hits[0], tier(q, hits[0].ArtistName), len(hits[0].ArtistName)
	for _, hit := range hits[1:] {
		t, l := tier(q, hit.ArtistName), len(hit.ArtistName)
		if t > bestTier || (t == bestTier && l < bestLen) {
			best, bestTier, bestLen = hit, t, l
		}
	}
	return best, true
}

func tier(q, rawName string) int {
	n := Normalize(rawName)
	switch {
	case n == q:
		return 3
	case strings.HasPrefix(n, q) || containsWord(n, q):
		return 2
	case strings.Contains(n, q):
		return 1
	default:
		return 0
	}
}

func containsWord(name, word string) bool {
	for _, w := range strings.Fields(name) {
		if w == word {
			return true
		}
	}
	return false
}
