package wire

import (
	"fmt"
	"sort"
	"strconv"
)

// Enum is the codec contract an enum field supplies. Stringify renders
// the wire form into dst and returns the number of bytes written, or 0
// when the value is not representable or does not fit. Parse consumes a
// prefix of src and returns the number of bytes taken, or 0 on no match.
type Enum interface {
	Stringify(dst []byte) int
	Parse(src []byte) int
}

// Value is the set of underlying types an enum variant may have.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Numeric is an enum transported as a signed decimal. Parsing validates
// that the number is one of the declared variants.
type Numeric[T Value] struct {
	Value    T
	declared []T
}

// NewNumeric declares a numeric enum over the given variant set.
func NewNumeric[T Value](declared ...T) Numeric[T] {
	return Numeric[T]{declared: declared}
}

func (e *Numeric[T]) Stringify(dst []byte) int {
	s := strconv.FormatInt(int64(e.Value), 10)
	if len(s) > len(dst) {
		return 0
	}
	return copy(dst, s)
}

func (e *Numeric[T]) Parse(src []byte) int {
	n := scanInt(src)
	if n == 0 {
		return 0
	}
	num, err := strconv.ParseInt(string(src[:n]), 10, 64)
	if err != nil {
		return 0
	}
	v := T(num)
	for _, d := range e.declared {
		if d == v {
			e.Value = v
			return n
		}
	}
	return 0
}

func (e *Numeric[T]) emit(v OutputVisitor) bool { return v.Enum(e) }
func (e *Numeric[T]) parse(v InputVisitor) bool { return v.Enum(e) }

// TableEntry maps one custom wire string to its variant.
type TableEntry[T Value] struct {
	Key   string
	Value T
}

// Table is a custom-string enum mapping. The entries must be strictly
// sorted by key; NewTable panics otherwise, so a malformed table is
// caught at construction. Parse is a binary search over the key prefix
// of the input; Stringify is a linear scan (the rare direction).
type Table[T Value] struct {
	entries []TableEntry[T]
}

// NewTable builds a table from strictly key-sorted entries.
func NewTable[T Value](entries ...TableEntry[T]) Table[T] {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key >= entries[i].Key {
			panic(fmt.Sprintf("wire: enum table not strictly sorted at %q", entries[i].Key))
		}
	}
	return Table[T]{entries: entries}
}

// Stringify renders the key for v, or 0 bytes when v is not declared or
// the key does not fit.
func (t Table[T]) Stringify(v T, dst []byte) int {
	for _, e := range t.entries {
		if e.Value == v {
			if len(e.Key) > len(dst) {
				return 0
			}
			return copy(dst, e.Key)
		}
	}
	return 0
}

// Parse binary-searches for the first key (in sort order) that is not
// less than the equally long prefix of src; if that key prefixes src it
// returns the variant and the key length, otherwise 0. When one declared
// key is a prefix of another, the shorter key is the one matched.
func (t Table[T]) Parse(src []byte) (T, int) {
	var zero T
	if len(src) == 0 {
		return zero, 0
	}
	i := sort.Search(len(t.entries), func(i int) bool {
		k := t.entries[i].Key
		p := src
		if len(k) < len(p) {
			p = p[:len(k)]
		}
		return k >= string(p)
	})
	if i < len(t.entries) {
		k := t.entries[i].Key
		if len(k) <= len(src) && string(src[:len(k)]) == k {
			return t.entries[i].Value, len(k)
		}
	}
	return zero, 0
}

// Bind couples an initial value with the table as an Enum field.
func (t Table[T]) Bind(v T) Tabled[T] {
	return Tabled[T]{Value: v, table: t}
}

// Tabled is a custom-string enum field backed by a Table.
type Tabled[T Value] struct {
	Value T
	table Table[T]
}

func (e *Tabled[T]) Stringify(dst []byte) int {
	return e.table.Stringify(e.Value, dst)
}

func (e *Tabled[T]) Parse(src []byte) int {
	v, n := e.table.Parse(src)
	if n > 0 {
		e.Value = v
	}
	return n
}

func (e *Tabled[T]) emit(v OutputVisitor) bool { return v.Enum(e) }
func (e *Tabled[T]) parse(v InputVisitor) bool { return v.Enum(e) }

// scanInt returns the length of the optional sign plus decimal digits at
// the head of src.
func scanInt(src []byte) int {
	i := 0
	if i < len(src) && (src[i] == '-' || src[i] == '+') {
		i++
	}
	start := i
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	return i
}
