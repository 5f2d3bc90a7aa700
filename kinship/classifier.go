package kinship

import (
	"fmt"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

type set map[string]struct{}

func (s set) has(id string) bool {
	_, ok := s[id]
	return ok
}

func link(m map[string]set, a, b string) {
	if m[a] == nil {
		m[a] = set{}
	}
	m[a][b] = struct{}{}
}

// Classifier labels paths over one family. It is safe for concurrent use
// once built.
type Classifier struct {
	g        *family.Graph
	parents  map[string]set
	children map[string]set
	spouses  map[string]set
	siblings map[string]set // recorded Sibling relationships only
}

// New indexes g. A nil graph yields a Classifier that finds no relation.
func New(g *family.Graph) *Classifier {
	c := &Classifier{
		g:        g,
		parents:  make(map[string]set),
		children: make(map[string]set),
		spouses:  make(map[string]set),
		siblings: make(map[string]set),
	}
	if g == nil {
		return c
	}
	for _, r := range g.Relationships() {
		if r.From == r.To {
			continue
		}
		switch r.Kind {
		case family.ParentChild:
			link(c.parents, r.To, r.From)
			link(c.children, r.From, r.To)
		case family.Spouse:
			link(c.spouses, r.From, r.To)
			link(c.spouses, r.To, r.From)
		case family.Sibling:
			link(c.siblings, r.From, r.To)
			link(c.siblings, r.To, r.From)
		}
	}

	return c
}

// Classify returns how target relates to source, given the path found
// between them.
func (c *Classifier) Classify(path family.Path, source, target string) Relation {
	if c.g == nil || !c.g.HasPerson(source) || !c.g.HasPerson(target) {
		return c.relation(None, target)
	}
	if source == target {
		return c.relation(Self, target)
	}
	if path.Empty() {
		return c.relation(None, target)
	}
	for _, id := range path.PersonIDs {
		if !c.g.HasPerson(id) {
			return c.relation(fallback(path), target)
		}
	}

	if path.Len() == 1 {
		if k, ok := direct(path.Relationships[0], source, target); ok {
			return c.relation(k, target)
		}
	}
	if k, ok := c.blood(source, target); ok {
		return c.relation(k, target)
	}
	if k, ok := c.marriage(source, target); ok {
		return c.relation(k, target)
	}

	return c.relation(fallback(path), target)
}

// Describe classifies the path and phrases it as a sentence naming both
// persons, e.g. "Mara is the grandmother of Theo".
func (c *Classifier) Describe(path family.Path, source, target string) string {
	rel := c.Classify(path, source, target)
	s, t := c.name(source), c.name(target)
	switch rel.Kind {
	case None:
		return rel.Label
	case Self:
		return fmt.Sprintf("%s is the same person as %s", t, s)
	case ExtendedFamily:
		return fmt.Sprintf("%s is related to %s through the extended family", t, s)
	case Cousin, Relative, DistantRelative:
		return fmt.Sprintf("%s is a %s of %s", t, rel.Label, s)
	default:
		return fmt.Sprintf("%s is the %s of %s", t, rel.Label, s)
	}
}

// Describe labels the path between source and target in g.
func Describe(g *family.Graph, path family.Path, source, target string) string {
	return New(g).Describe(path, source, target)
}

func (c *Classifier) relation(k Kind, target string) Relation {
	var g family.Gender
	if c.g != nil {
		if p, ok := c.g.Person(target); ok {
			g = p.Gender
		}
	}

	return Relation{Kind: k, Label: k.Label(g)}
}

func (c *Classifier) name(id string) string {
	if c.g != nil {
		if p, ok := c.g.Person(id); ok {
			return p.DisplayName()
		}
	}

	return id
}

// direct labels a single relationship joining source and target.
func direct(r family.Relationship, source, target string) (Kind, bool) {
	if !r.Connects(source, target) {
		return None, false
	}
	switch r.Kind {
	case family.ParentChild:
		if r.From == target {
			return Parent, true
		}
		return Child, true
	case family.Spouse:
		return Spouse, true
	case family.Sibling:
		return Sibling, true
	default:
		return Relative, true
	}
}

func (c *Classifier) blood(s, t string) (Kind, bool) {
	shared := c.sharedParents(s, t)
	switch {
	case shared >= 2:
		return Sibling, true
	case shared == 1:
		return HalfSibling, true
	case c.siblings[s].has(t):
		return Sibling, true
	}

	switch {
	case c.ancestor(t, s, 2):
		return Grandparent, true
	case c.ancestor(s, t, 2):
		return Grandchild, true
	case c.ancestor(t, s, 3):
		return GreatGrandparent, true
	case c.ancestor(s, t, 3):
		return GreatGrandchild, true
	case c.cousins(s, t):
		return Cousin, true
	}

	for p := range c.parents[s] {
		if c.siblingOf(p, t) {
			return ParentSibling, true
		}
	}
	for p := range c.parents[t] {
		if c.siblingOf(p, s) {
			return SiblingChild, true
		}
	}

	return None, false
}

func (c *Classifier) marriage(s, t string) (Kind, bool) {
	for sp := range c.spouses[s] {
		if c.siblingOf(sp, t) {
			return SiblingInLaw, true
		}
	}
	for sp := range c.spouses[t] {
		if c.siblingOf(sp, s) {
			return SiblingInLaw, true
		}
	}
	for sp := range c.spouses[s] {
		if c.parents[sp].has(t) {
			return ParentInLaw, true
		}
	}
	for ch := range c.children[s] {
		if c.spouses[ch].has(t) {
			return ChildInLaw, true
		}
	}

	return None, false
}

func (c *Classifier) sharedParents(a, b string) int {
	n := 0
	for p := range c.parents[a] {
		if c.parents[b].has(p) {
			n++
		}
	}

	return n
}

// siblingOf reports whether a and b are recorded siblings or share a parent.
func (c *Classifier) siblingOf(a, b string) bool {
	if a == b {
		return false
	}

	return c.siblings[a].has(b) || c.sharedParents(a, b) > 0
}

// ancestor reports whether a is an ancestor of d exactly gen generations up.
func (c *Classifier) ancestor(a, d string, gen int) bool {
	level := set{d: {}}
	for i := 0; i < gen; i++ {
		next := set{}
		for id := range level {
			for p := range c.parents[id] {
				next[p] = struct{}{}
			}
		}
		level = next
	}

	return level.has(a)
}

// cousins reports a shared grandparent without a shared parent.
func (c *Classifier) cousins(a, b string) bool {
	if c.sharedParents(a, b) > 0 {
		return false
	}
	grand := set{}
	for p := range c.parents[a] {
		for gp := range c.parents[p] {
			grand[gp] = struct{}{}
		}
	}
	for p := range c.parents[b] {
		for gp := range c.parents[p] {
			if grand.has(gp) {
				return true
			}
		}
	}

	return false
}

// fallback labels a path by its length and kinds alone.
func fallback(path family.Path) Kind {
	n := path.Len()
	if n == 3 {
		blood := true
		for _, r := range path.Relationships {
			if r.Kind != family.ParentChild && r.Kind != family.Sibling {
				blood = false
				break
			}
		}
		if blood {
			return Cousin
		}
	}
	if n > 6 {
		return DistantRelative
	}

	return ExtendedFamily
}
