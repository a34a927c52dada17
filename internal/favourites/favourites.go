// Package favourites encodes and mutates a user's favourite recipes.
//
// Favourites are persisted as a single comma-joined string of decimal recipe
// ids ("3,7,5"). An empty or NULL value means the user has no favourites.
// Decoding never fails: tokens that are empty, malformed or repeated are
// dropped so callers always see a clean ordered set.
package favourites

import (
	"slices"
	"strconv"
	"strings"
)

const delimiter = ","

// Parse decodes a stored favourites string. Order is preserved and only the
// first occurrence of an id is kept.
func Parse(stored string) []int64 {
	if strings.TrimSpace(stored) == "" {
		return nil
	}

	parts := strings.Split(stored, delimiter)
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		if slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Format encodes ids into the stored representation. A nil or empty slice
// encodes to the empty string, which the store writes as NULL.
func Format(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, delimiter)
}

// Add appends rid to the stored favourites unless it is already present.
func Add(stored string, rid int64) string {
	ids := Parse(stored)
	if slices.Contains(ids, rid) {
		return Format(ids)
	}
	return Format(append(ids, rid))
}

// Remove drops rid from the stored favourites. It is a no-op when rid is
// not a member.
func Remove(stored string, rid int64) string {
	ids := Parse(stored)
	if idx := slices.Index(ids, rid); idx >= 0 {
		ids = slices.Delete(ids, idx, idx+1)
	}
	return Format(ids)
}

// Contains reports whether rid is one of the stored favourites.
func Contains(stored string, rid int64) bool {
	return slices.Contains(Parse(stored), rid)
}
