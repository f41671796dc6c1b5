package model

// IDGenerator hands out record ids. The first id is 1 and every call to
// Next returns the previous id plus one; ids are never reused.
//
// A generator is not safe for concurrent use.
type IDGenerator struct {
	last int
}

// NewIDGenerator returns a generator whose first id is 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next id.
func (g *IDGenerator) Next() int {
	g.last++
	return g.last
}

// Last returns the most recently issued id, or 0 if none was issued.
func (g *IDGenerator) Last() int {
	return g.last
}
