package colorutil

import "fmt"

// SelectDistinct returns up to count colors from candidates whose pairwise
// perceptual distance is strictly greater than threshold.
//
// Candidates are scanned once, in order. A candidate is kept when its
// distance to every color kept so far exceeds threshold; a distance equal
// to threshold is rejected. Scanning stops as soon as count colors are
// kept. The result holds the original candidate strings in their input
// order, so it is always a subsequence of candidates.
//
// The selection is greedy first-fit: the first candidate is always kept
// and no attempt is made to find a larger or better-spread subset.
//
// If count <= 0 the result is empty and candidates are not inspected.
// Otherwise every candidate is converted to Lab before selection starts,
// so a malformed token fails the call with an error matching
// ErrInvalidColorFormat even if it lies past the point where count
// colors would have been found.
//
// SelectDistinct is a pure function of its arguments and is safe for
// concurrent use as long as the configured ColorSpace is.
func SelectDistinct(candidates []string, count int, threshold float64, opts ...SelectOption) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}

	o := defaultSelectOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Convert once, compare many times.
	labs := make([]Lab, len(candidates))
	for i, c := range candidates {
		lab, err := o.space.ToLab(c)
		if err != nil {
			return nil, fmt.Errorf("colorutil: candidate %d: %w", i, err)
		}
		labs[i] = lab
	}

	limit := min(count, len(candidates))
	selected := make([]string, 0, limit)
	kept := make([]Lab, 0, limit)
	for i, lab := range labs {
		if len(selected) == count {
			break
		}
		if isDistinct(o.space, lab, kept, threshold) {
			selected = append(selected, candidates[i])
			kept = append(kept, lab)
		}
	}
	return selected, nil
}

// isDistinct reports whether lab is farther than threshold from every kept color.
func isDistinct(cs ColorSpace, lab Lab, kept []Lab, threshold float64) bool {
	for _, k := range kept {
		if cs.Distance(lab, k) <= threshold {
			return false
		}
	}
	return true
}
