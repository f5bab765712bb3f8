package affinity

import (
	"slices"
	"sort"

	"github.com/dshills/inputmask/internal/mask"
)

// Scored is a mask with its affinity for an input.
type Scored struct {
	Mask    *mask.Mask
	Score   int
	Primary bool
}

// Rank scores the primary mask and its alternatives and orders them best first.
//
// Alternatives are stable-sorted by descending score. The primary mask is
// then inserted before the first alternative it scores at least as well as,
// so ties go to the primary mask and earlier alternatives win ties among
// themselves.
func Rank(primary *mask.Mask, affine []*mask.Mask, text mask.CaretString, autocomplete bool, s Strategy) []Scored {
	primaryScore := s.Score(primary, text, autocomplete)

	ranked := make([]Scored, 0, len(affine)+1)
	for _, m := range affine {
		ranked = append(ranked, Scored{Mask: m, Score: s.Score(m, text, autocomplete)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	insertAt := len(ranked)
	for i, r := range ranked {
		if primaryScore >= r.Score {
			insertAt = i
			break
		}
	}
	return slices.Insert(ranked, insertAt, Scored{Mask: primary, Score: primaryScore, Primary: true})
}

// Pick returns the mask that fits text best. Without alternatives the
// primary mask is returned without scoring.
func Pick(primary *mask.Mask, affine []*mask.Mask, text mask.CaretString, autocomplete bool, s Strategy) *mask.Mask {
	if len(affine) == 0 {
		return primary
	}
	return Rank(primary, affine, text, autocomplete, s)[0].Mask
}
