package dispatchers

import (
	"fmt"
	"sort"
)

// Grammar is the fixed catalog of recognized commands. Every verb maps to
// a non-empty list of descriptors in declaration order; a verb with a
// single descriptor is just a list of length one.
type Grammar struct {
	byVerb map[string][]*Descriptor
	byID   map[OperationID]*Descriptor
	order  []*Descriptor
}

// NewGrammar builds a Grammar from descriptors. Duplicate or empty
// operation IDs and empty verbs are configuration errors.
func NewGrammar(descriptors ...Descriptor) (*Grammar, error) {
	g := &Grammar{
		byVerb: make(map[string][]*Descriptor),
		byID:   make(map[OperationID]*Descriptor),
	}

	for i := range descriptors {
		d := descriptors[i]

		if d.ID == "" {
			return nil, fmt.Errorf("grammar: descriptor %d has no operation id", i)
		}
		if d.Verb == "" {
			return nil, fmt.Errorf("grammar: operation %q has no verb", d.ID)
		}
		if d.MinArgs < 0 {
			return nil, fmt.Errorf("grammar: operation %q has negative argument count", d.ID)
		}
		if _, dup := g.byID[d.ID]; dup {
			return nil, fmt.Errorf("grammar: duplicate operation id %q", d.ID)
		}

		g.byID[d.ID] = &d
		g.byVerb[d.Verb] = append(g.byVerb[d.Verb], &d)
		g.order = append(g.order, &d)
	}

	return g, nil
}

// MustGrammar is like NewGrammar but panics on a configuration error.
func MustGrammar(descriptors ...Descriptor) *Grammar {
	g, err := NewGrammar(descriptors...)
	if err != nil {
		panic(err)
	}
	return g
}

// Lookup returns the candidate descriptors for verb, or nil if the verb is unknown.
func (g *Grammar) Lookup(verb string) []*Descriptor {
	return g.byVerb[verb]
}

// Descriptor returns the descriptor bound to id.
func (g *Grammar) Descriptor(id OperationID) (*Descriptor, bool) {
	d, ok := g.byID[id]
	return d, ok
}

// Descriptors returns all descriptors in declaration order.
func (g *Grammar) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(g.order))
	copy(out, g.order)
	return out
}

// IDs returns every operation id in declaration order.
func (g *Grammar) IDs() []OperationID {
	ids := make([]OperationID, 0, len(g.order))
	for _, d := range g.order {
		ids = append(ids, d.ID)
	}
	return ids
}

// Verbs returns the distinct verbs, sorted.
func (g *Grammar) Verbs() []string {
	verbs := make([]string, 0, len(g.byVerb))
	for v := range g.byVerb {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}
