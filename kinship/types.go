package kinship

import "github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"

// Kind is the class of a kinship relation, independent of gender.
type Kind int

const (
	// None means no relation could be established.
	None Kind = iota
	Self
	Parent
	Child
	Spouse
	Sibling
	HalfSibling
	Grandparent
	Grandchild
	GreatGrandparent
	GreatGrandchild
	Cousin
	// ParentSibling is an uncle or aunt.
	ParentSibling
	// SiblingChild is a nephew or niece.
	SiblingChild
	SiblingInLaw
	ParentInLaw
	ChildInLaw
	// Relative is a direct relationship of kind family.Other.
	Relative
	DistantRelative
	ExtendedFamily
)

// words holds the masculine, feminine and neutral label of each kind.
var words = map[Kind][3]string{
	None:             {"no relation found", "no relation found", "no relation found"},
	Self:             {"same person", "same person", "same person"},
	Parent:           {"father", "mother", "parent"},
	Child:            {"son", "daughter", "child"},
	Spouse:           {"husband", "wife", "spouse"},
	Sibling:          {"brother", "sister", "sibling"},
	HalfSibling:      {"half-brother", "half-sister", "half-sibling"},
	Grandparent:      {"grandfather", "grandmother", "grandparent"},
	Grandchild:       {"grandson", "granddaughter", "grandchild"},
	GreatGrandparent: {"great-grandfather", "great-grandmother", "great-grandparent"},
	GreatGrandchild:  {"great-grandson", "great-granddaughter", "great-grandchild"},
	Cousin:           {"cousin", "cousin", "cousin"},
	ParentSibling:    {"uncle", "aunt", "parent's sibling"},
	SiblingChild:     {"nephew", "niece", "sibling's child"},
	SiblingInLaw:     {"brother-in-law", "sister-in-law", "sibling-in-law"},
	ParentInLaw:      {"father-in-law", "mother-in-law", "parent-in-law"},
	ChildInLaw:       {"son-in-law", "daughter-in-law", "child-in-law"},
	Relative:         {"relative", "relative", "relative"},
	DistantRelative:  {"distant relative", "distant relative", "distant relative"},
	ExtendedFamily:   {"related through the extended family", "related through the extended family", "related through the extended family"},
}

// String returns the neutral label of k.
func (k Kind) String() string {
	w, ok := words[k]
	if !ok {
		return "unknown"
	}

	return w[2]
}

// Label returns the label of k for a target of gender g.
func (k Kind) Label(g family.Gender) string {
	w, ok := words[k]
	if !ok {
		return "unknown"
	}
	switch g {
	case family.GenderMale:
		return w[0]
	case family.GenderFemale:
		return w[1]
	default:
		return w[2]
	}
}

// Relation is the classification of one path.
type Relation struct {
	Kind  Kind
	Label string
}

// Found reports whether a relation was established.
func (r Relation) Found() bool { return r.Kind != None }
