package tree

import (
	"cmp"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// Ranked pairs one source's Tree with its precedence rank.
// Lower rank means higher precedence.
type Ranked struct {
	Tree Tree
	Rank int
}

// MergeRanked folds the given trees into one, independent of input order:
// trees are applied from the highest rank number (lowest precedence) to the
// lowest, each application deep-merging on top of the accumulator. Nested
// mappings present on both sides merge recursively; any other collision is
// resolved wholesale in favour of the later-applied tree, so arrays replace
// rather than element-merge and sibling keys from lower-precedence sources
// survive untouched.
func MergeRanked(sources []Ranked) (Tree, error) {
	ordered := slices.Clone(sources)
	slices.SortStableFunc(ordered, func(a, b Ranked) int {
		return cmp.Compare(b.Rank, a.Rank)
	})

	merged := Tree{}
	for _, s := range ordered {
		if err := mergo.Merge(&merged, s.Tree, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging rank %d tree: %w", s.Rank, err)
		}
	}

	return merged, nil
}
