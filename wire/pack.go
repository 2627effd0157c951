package wire

// Factory produces a fresh, zero-valued candidate for trial parsing. A
// new candidate is made for every attempt so a partial parse cannot leak
// state into the binding.
type Factory func() Response

// Pack is an ordered, closed set of candidate response shapes plus a
// current binding. After a successful Accept the binding is exactly the
// first alternative, in declaration order, whose trial parse consumed a
// clean frame.
type Pack struct {
	alts  []Factory
	value Response
	idx   int
}

// NewPack declares a pack over the given alternatives.
func NewPack(alts ...Factory) *Pack {
	return &Pack{alts: alts, idx: -1}
}

// Accept trial-parses the alternatives left to right. The visitor is
// rewound before every attempt; on the first match the candidate is
// moved into the binding and later alternatives are not tried.
func (p *Pack) Accept(v InputVisitor) bool {
	for i, mk := range p.alts {
		v.Rewind()
		cand := mk()
		if cand.Accept(v) {
			p.value = cand
			p.idx = i
			return true
		}
	}
	return false
}

// Reset clears the binding.
func (p *Pack) Reset() {
	p.value = nil
	p.idx = -1
}

// Bound reports whether a previous Accept matched.
func (p *Pack) Bound() bool { return p.value != nil }

// Value returns the bound response, or nil when the pack is empty.
func (p *Pack) Value() Response { return p.value }

// Index returns the position of the bound alternative, or -1.
func (p *Pack) Index() int { return p.idx }

// As returns the binding when it is of type R.
func As[R Response](p *Pack) (R, bool) {
	r, ok := p.value.(R)
	return r, ok
}

// Holds reports whether the binding is of type R.
func Holds[R Response](p *Pack) bool {
	_, ok := p.value.(R)
	return ok
}
