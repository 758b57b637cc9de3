package libacset

import "sort"

// Ordering is a deterministic total order on tables, arrows and attribute
// arrows, used by canonicalization's sort key.
type Ordering struct {
	Tables []int32 // table indices, comparison-priority order
	Arrows []int32 // arrow indices, comparison-priority order
	Attrs  []int32 // attribute arrow indices, comparison-priority order
}

type tableScore struct {
	in  int64
	out int64
}

// Ordering computes (and caches) the schema ordering heuristic.
//
// Every table starts with score (1,1) and repeatedly absorbs the in-scores of
// its arrow sources and the out-scores of its arrow targets until the induced
// order goes stationary.  The order is score ascending, reversed, so that
// easily-distinguished tables dominate the canonical comparison early.
// Arrows rank by the summed scores of their endpoints, likewise reversed.
func (s *Schema) Ordering() *Ordering {
	if s.order != nil {
		return s.order
	}

	nT := len(s.Tables)
	scores := make([]tableScore, nT)
	for ti := range scores {
		scores[ti] = tableScore{in: 1, out: 1}
	}

	order := tableOrder(scores)
	maxRounds := 2*nT + 4

	for round := 0; round < maxRounds; round++ {
		next := make([]tableScore, nT)
		copy(next, scores)
		for _, a := range s.Arrows {
			next[a.Tgt].in += scores[a.Src].in
			next[a.Src].out += scores[a.Tgt].out
		}
		scores = next

		nextOrder := tableOrder(scores)
		if sameOrder(order, nextOrder) {
			break
		}
		order = nextOrder
	}

	// Reverse: tableOrder sorts by ascending score, so the flip puts the
	// high-score tables at the comparison front.
	reverse(order)

	arrowOrder := make([]int32, len(s.Arrows))
	for ai := range arrowOrder {
		arrowOrder[ai] = int32(ai)
	}
	arrowScore := func(ai int32) int64 {
		a := s.Arrows[ai]
		return scores[a.Src].in + scores[a.Src].out + scores[a.Tgt].in + scores[a.Tgt].out
	}
	sort.SliceStable(arrowOrder, func(x, y int) bool {
		return arrowScore(arrowOrder[x]) < arrowScore(arrowOrder[y])
	})
	reverse(arrowOrder)

	// Attribute arrows rank by their source table's position in the table
	// order, ties in schema order.
	tablePos := make([]int32, nT)
	for pos, ti := range order {
		tablePos[ti] = int32(pos)
	}
	attrOrder := make([]int32, len(s.Attrs))
	for ai := range attrOrder {
		attrOrder[ai] = int32(ai)
	}
	sort.SliceStable(attrOrder, func(x, y int) bool {
		return tablePos[s.Attrs[attrOrder[x]].Src] < tablePos[s.Attrs[attrOrder[y]].Src]
	})

	s.order = &Ordering{
		Tables: order,
		Arrows: arrowOrder,
		Attrs:  attrOrder,
	}
	return s.order
}

func tableOrder(scores []tableScore) []int32 {
	order := make([]int32, len(scores))
	for ti := range order {
		order[ti] = int32(ti)
	}
	sort.SliceStable(order, func(x, y int) bool {
		sx, sy := scores[order[x]], scores[order[y]]
		if sx.in != sy.in {
			return sx.in < sy.in
		}
		return sx.out < sy.out
	})
	return order
}

func sameOrder(a, b []int32) bool {
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

func reverse(a []int32) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
