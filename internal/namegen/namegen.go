// Package namegen enumerates short, legal JavaScript identifiers in shortlex
// order, grounded directly on name_generator.py's NameGenerator.
package namegen

// disallowed holds short identifiers that collide with reserved words even
// though they pass the length-1..3 alphabet check; mirrors
// name_generator.py's DISALLOWED_NAMES.
var disallowed = map[string]bool{
	"as": true, "is": true, "do": true, "if": true, "in": true,
	"for": true, "int": true, "new": true, "try": true, "use": true,
	"var": true,
}

const firstChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ$_"
const restChars = firstChars + "0123456789"

// Generator produces an unbounded stream of candidate names via Next, in
// ascending length-then-lexicographic ("shortlex") order, skipping names in
// disallowed. Each Generator value enumerates independently; the
// renamer creates one per scope so identical candidates can be reused in
// sibling scopes.
type Generator struct {
	length  int
	indices []int
}

// New creates a generator that starts from the shortest legal name.
func New() *Generator {
	g := &Generator{}
	g.reset(1)
	return g
}

func (g *Generator) reset(length int) {
	g.length = length
	g.indices = make([]int, length)
}

func charsetFor(position, length int) string {
	if position == 0 {
		return firstChars
	}
	_ = length
	return restChars
}

// Next returns the next candidate name, skipping disallowed words.
func (g *Generator) Next() string {
	for {
		name := g.build()
		g.advance()
		if !disallowed[name] {
			return name
		}
	}
}

func (g *Generator) build() string {
	buf := make([]byte, g.length)
	for i, idx := range g.indices {
		buf[i] = charsetFor(i, g.length)[idx]
	}
	return string(buf)
}

// advance increments indices like an odometer, rightmost digit fastest, and
// grows the name length once the current length is exhausted.
func (g *Generator) advance() {
	for i := g.length - 1; i >= 0; i-- {
		cs := charsetFor(i, g.length)
		g.indices[i]++
		if g.indices[i] < len(cs) {
			return
		}
		g.indices[i] = 0
	}
	g.reset(g.length + 1)
}
