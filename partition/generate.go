package partition

// Generate returns every ordered composition of length into parts ≥ minPart.
//
// Algorithm:
//  1. Emit [length] first, unconditionally. This holds even when
//     length < minPart, so Generate(0, m) == [[0]].
//  2. If length ≥ 2·minPart, for each first part p in [minPart, length−minPart]
//     ascending, emit p prepended to every partition of length−p.
//  3. Otherwise stop after step 1.
//
// Every recursive call strictly shrinks length (p ≥ minPart > 0), so the
// recursion terminates. Because p walks a fixed ascending range and tails are
// themselves distinct, no partition is emitted twice.
//
// Errors:
//   - ErrInvalidArgument — minPart ≤ 0 or length < 0.
//   - ErrOptionViolation — an Option received a meaningless value.
//
// Complexity: output-sensitive, exponential in length/minPart.
func Generate(length, minPart int, opts ...Option) (Set, error) {
	if err := validate(length, minPart); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &generator{minPart: minPart}
	if o.Memo {
		g.memo = make(map[memoKey]Set)
	}

	return g.generate(length, o.MaxParts), nil
}

// memoKey identifies a tail computation: remaining length and part budget.
type memoKey struct {
	length int
	limit  int
}

// generator carries the per-call state of Generate.
type generator struct {
	minPart int
	memo    map[memoKey]Set // nil unless WithMemo(true)
}

// generate builds the partitions of length with at most limit parts
// (limit == 0 means unlimited). Tails read from the memo are never handed
// out directly: each emitted partition is a fresh slice.
func (g *generator) generate(length, limit int) Set {
	key := memoKey{length: length, limit: limit}
	if g.memo != nil {
		if cached, ok := g.memo[key]; ok {
			return cached
		}
	}

	out := Set{Partition{length}}
	if g.minPart <= length/2 && limit != 1 {
		tailLimit := 0
		if limit > 0 {
			tailLimit = limit - 1
		}
		for p := g.minPart; p <= length-g.minPart; p++ {
			for _, tail := range g.generate(length-p, tailLimit) {
				next := make(Partition, 0, len(tail)+1)
				next = append(next, p)
				next = append(next, tail...)
				out = append(out, next)
			}
		}
	}

	if g.memo != nil {
		g.memo[key] = out
	}

	return out
}
