package rtp

import (
	"fmt"
	"sort"
)

// Kind identifies how the text at one position is decoded.
type Kind int

const (
	KindKeyword Kind = iota
	KindText
	KindReal
	KindUint
	KindCount
	KindRotation
	KindChecksum
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindText:
		return "text"
	case KindReal:
		return "real?"
	case KindUint:
		return "uint?"
	case KindCount:
		return "count"
	case KindRotation:
		return "rotation?"
	case KindChecksum:
		return "checksum"
	default:
		return "unknown"
	}
}

// Layout names how the two parallel halves of a region are arranged.
type Layout int

const (
	// LayoutBanks places region A and region B in consecutive blocks.
	LayoutBanks Layout = iota
	// LayoutPairs interleaves element i of A and B at adjacent positions.
	LayoutPairs
	// LayoutGroups is a fixed-count block of heterogeneous pairs that is
	// always read in full.
	LayoutGroups
)

func (l Layout) String() string {
	switch l {
	case LayoutBanks:
		return "banks"
	case LayoutPairs:
		return "pairs"
	case LayoutGroups:
		return "groups"
	default:
		return "unknown"
	}
}

// slot is one named scalar position of a schema.
type slot[R any] struct {
	name   string
	pos    int
	kind   Kind
	decode func(keyword string, rec *R, raw string) error
}

// region is a reserved block of capacity elements split into two parallel
// halves. Element i of half A lives at baseA+i*stride and element i of half B
// at baseB+i*stride. When count is nil the whole capacity is read.
type region[R any] struct {
	nameA, nameB string
	layout       Layout
	countField   string
	count        func(*R) int
	capacity     int
	baseA, baseB int
	stride       int
	elem         func(keyword string, rec *R, i int, posA, posB int, a, b string) error
}

// Schema is the declared layout of one record kind.
type Schema[R any] struct {
	keyword string
	length  int
	slots   []slot[R]
	regions []region[R]
	steps   []step[R]
}

type step[R any] struct {
	start int
	run   func(rec *R, fields []string) error
}

func newSchema[R any](keyword string, length int, slots []slot[R], regions ...region[R]) *Schema[R] {
	s := &Schema[R]{keyword: keyword, length: length, slots: slots, regions: regions}
	s.steps = make([]step[R], 0, len(slots)+len(regions))
	for _, sl := range slots {
		s.steps = append(s.steps, step[R]{start: sl.pos, run: func(rec *R, fields []string) error {
			return sl.decode(keyword, rec, fields[sl.pos])
		}})
	}
	for _, rg := range regions {
		start := min(rg.baseA, rg.baseB)
		s.steps = append(s.steps, step[R]{start: start, run: func(rec *R, fields []string) error {
			return rg.decode(keyword, rec, fields)
		}})
	}
	sort.SliceStable(s.steps, func(i, j int) bool { return s.steps[i].start < s.steps[j].start })
	if err := s.check(); err != nil {
		panic(err)
	}
	return s
}

// Keyword returns the literal tag expected at position 0.
func (s *Schema[R]) Keyword() string { return s.keyword }

// Length returns the declared field count, including reserved capacity.
func (s *Schema[R]) Length() int { return s.length }

// Decode validates fields against the schema and returns the typed record.
// Checks run in a fixed order: field count, keyword, then every position in
// ascending order ending with the checksum.
func (s *Schema[R]) Decode(fields []string) (R, error) {
	var rec R
	if len(fields) != s.length {
		return rec, &ArityError{Keyword: s.keyword, Expected: s.length, Actual: len(fields)}
	}
	if fields[0] != s.keyword {
		return rec, &KeywordError{Expected: s.keyword, Actual: fields[0]}
	}
	for _, st := range s.steps {
		if err := st.run(&rec, fields); err != nil {
			var zero R
			return zero, err
		}
	}
	return rec, nil
}

func (rg region[R]) decode(keyword string, rec *R, fields []string) error {
	n := rg.capacity
	if rg.count != nil {
		n = rg.count(rec)
		if n > rg.capacity {
			return &CapacityError{Keyword: keyword, Field: rg.countField, Count: n, Capacity: rg.capacity}
		}
	}
	for i := 0; i < n; i++ {
		posA := rg.baseA + i*rg.stride
		posB := rg.baseB + i*rg.stride
		if err := rg.elem(keyword, rec, i, posA, posB, fields[posA], fields[posB]); err != nil {
			return err
		}
	}
	return nil
}

// positions lists every index the region reserves, used and unused.
func (rg region[R]) positions() []int {
	out := make([]int, 0, 2*rg.capacity)
	for i := 0; i < rg.capacity; i++ {
		out = append(out, rg.baseA+i*rg.stride, rg.baseB+i*rg.stride)
	}
	return out
}

// check verifies that the table covers every position exactly once, starts
// with the keyword and ends with the checksum.
func (s *Schema[R]) check() error {
	owner := make([]string, s.length)
	claim := func(pos int, name string) error {
		if pos < 0 || pos >= s.length {
			return fmt.Errorf("rtp: schema %s: %s at position %d outside length %d", s.keyword, name, pos, s.length)
		}
		if owner[pos] != "" {
			return fmt.Errorf("rtp: schema %s: position %d claimed by %s and %s", s.keyword, pos, owner[pos], name)
		}
		owner[pos] = name
		return nil
	}
	for _, sl := range s.slots {
		if err := claim(sl.pos, sl.name); err != nil {
			return err
		}
	}
	for _, rg := range s.regions {
		for _, pos := range rg.positions() {
			if err := claim(pos, rg.nameA+"/"+rg.nameB); err != nil {
				return err
			}
		}
	}
	for pos, name := range owner {
		if name == "" {
			return fmt.Errorf("rtp: schema %s: position %d not declared", s.keyword, pos)
		}
	}
	if len(s.slots) == 0 || s.slots[0].kind != KindKeyword || s.slots[0].pos != 0 {
		return fmt.Errorf("rtp: schema %s: first slot must be the keyword", s.keyword)
	}
	last := s.slots[len(s.slots)-1]
	if last.kind != KindChecksum || last.pos != s.length-1 {
		return fmt.Errorf("rtp: schema %s: last slot must be the checksum", s.keyword)
	}
	return nil
}

func tag[R any]() slot[R] {
	return slot[R]{name: "keyword", pos: 0, kind: KindKeyword, decode: func(string, *R, string) error { return nil }}
}

func text[R any](pos int, name string, ref func(*R) *string) slot[R] {
	return slot[R]{name: name, pos: pos, kind: KindText, decode: func(_ string, rec *R, raw string) error {
		*ref(rec) = raw
		return nil
	}}
}

func number[R any](pos int, name string, ref func(*R) **float64) slot[R] {
	return slot[R]{name: name, pos: pos, kind: KindReal, decode: func(_ string, rec *R, raw string) error {
		*ref(rec) = OptionalFloat(raw)
		return nil
	}}
}

func unsigned[R any](pos int, name string, ref func(*R) **uint32) slot[R] {
	return slot[R]{name: name, pos: pos, kind: KindUint, decode: func(_ string, rec *R, raw string) error {
		*ref(rec) = OptionalUint(raw)
		return nil
	}}
}

func count[R any](pos int, name string, ref func(*R) *uint32) slot[R] {
	return slot[R]{name: name, pos: pos, kind: KindCount, decode: func(kw string, rec *R, raw string) error {
		v, err := RequiredUint(raw)
		if err != nil {
			return &ValueError{Keyword: kw, Field: name, Position: pos, Value: raw, Err: err}
		}
		*ref(rec) = v
		return nil
	}}
}

func rotation[R any](pos int, name string, ref func(*R) **Rotation) slot[R] {
	return slot[R]{name: name, pos: pos, kind: KindRotation, decode: func(_ string, rec *R, raw string) error {
		if r, ok := ParseRotation(raw); ok {
			*ref(rec) = &r
		} else {
			*ref(rec) = nil
		}
		return nil
	}}
}

func checksum[R any](pos int, ref func(*R) *int32) slot[R] {
	return slot[R]{name: "crc", pos: pos, kind: KindChecksum, decode: func(kw string, rec *R, raw string) error {
		v, err := RequiredInt(raw)
		if err != nil {
			return &ChecksumError{Keyword: kw, Value: raw, Err: err}
		}
		*ref(rec) = v
		return nil
	}}
}

// leafRegion reads two parallel runs of mandatory reals sized by a count
// slot. Banks use stride 1 with separate bases; pairs use stride 2 with
// adjacent bases.
func leafRegion[R any](layout Layout, nameA, nameB, countField string, capacity, baseA, baseB, stride int,
	countOf func(*R) uint32, ref func(*R) (*[]float64, *[]float64)) region[R] {
	return region[R]{
		nameA:      nameA,
		nameB:      nameB,
		layout:     layout,
		countField: countField,
		count:      func(rec *R) int { return int(countOf(rec)) },
		capacity:   capacity,
		baseA:      baseA,
		baseB:      baseB,
		stride:     stride,
		elem: func(kw string, rec *R, i int, posA, posB int, a, b string) error {
			va, err := RequiredFloat(a)
			if err != nil {
				return &ValueError{Keyword: kw, Field: fmt.Sprintf("%s[%d]", nameA, i), Position: posA, Value: a, Err: err}
			}
			vb, err := RequiredFloat(b)
			if err != nil {
				return &ValueError{Keyword: kw, Field: fmt.Sprintf("%s[%d]", nameB, i), Position: posB, Value: b, Err: err}
			}
			sa, sb := ref(rec)
			if *sa == nil {
				*sa = make([]float64, 0, countOf(rec))
				*sb = make([]float64, 0, countOf(rec))
			}
			*sa = append(*sa, va)
			*sb = append(*sb, vb)
			return nil
		},
	}
}

// groupRegion reads a fixed block of (text, optional real) pairs in full.
func groupRegion[R any](nameA, nameB string, capacity, base int, ref func(*R) (*[]string, *[]*float64)) region[R] {
	return region[R]{
		nameA:    nameA,
		nameB:    nameB,
		layout:   LayoutGroups,
		capacity: capacity,
		baseA:    base,
		baseB:    base + 1,
		stride:   2,
		elem: func(_ string, rec *R, _ int, _, _ int, a, b string) error {
			sa, sb := ref(rec)
			*sa = append(*sa, a)
			*sb = append(*sb, OptionalFloat(b))
			return nil
		},
	}
}
