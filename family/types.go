package family

import (
	"errors"
	"math"
	"strings"
)

// Sentinel errors for the family package.
var (
	// ErrGraphNil is returned when a nil *Graph is supplied.
	ErrGraphNil = errors.New("family: graph is nil")

	// ErrUnknownKind is returned by ParseKind for an unrecognized kind name.
	ErrUnknownKind = errors.New("family: unknown relationship kind")

	// ErrUnknownGender is returned by ParseGender for an unrecognized gender name.
	ErrUnknownGender = errors.New("family: unknown gender")
)

// Infinity is the distance reported for unreachable persons.
const Infinity int64 = math.MaxInt64

// Gender of a person. The zero value is GenderUnknown.
type Gender int

const (
	// GenderUnknown means no gender was recorded.
	GenderUnknown Gender = iota
	// GenderMale selects masculine wording.
	GenderMale
	// GenderFemale selects feminine wording.
	GenderFemale
	// GenderOther selects neutral wording.
	GenderOther
)

// String returns the lower-case name of the gender.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	case GenderOther:
		return "other"
	default:
		return "unknown"
	}
}

// ParseGender maps "male"/"m", "female"/"f", "other" and "unknown"/"" to a Gender.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	case "other":
		return GenderOther, nil
	case "", "unknown":
		return GenderUnknown, nil
	}

	return GenderUnknown, ErrUnknownGender
}

// Kind is the type of a relationship.
type Kind int

const (
	// ParentChild links a parent (From) to a child (To).
	ParentChild Kind = iota
	// Spouse links two partners.
	Spouse
	// Sibling links two siblings.
	Sibling
	// Other links two persons in any other declared way.
	Other
)

// String returns the canonical hyphenated name of the kind.
func (k Kind) String() string {
	switch k {
	case ParentChild:
		return "parent-child"
	case Spouse:
		return "spouse"
	case Sibling:
		return "sibling"
	default:
		return "other"
	}
}

// ParseKind accepts the canonical names plus a few common spellings
// ("parent", "parent_child", "married", "brother", "sister").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parent-child", "parent_child", "parent", "child":
		return ParentChild, nil
	case "spouse", "married", "marriage":
		return Spouse, nil
	case "sibling", "brother", "sister":
		return Sibling, nil
	case "other":
		return Other, nil
	}

	return Other, ErrUnknownKind
}

// Policy says in which directions a relationship may be walked.
type Policy int

const (
	// PolicyForward allows only From→To.
	PolicyForward Policy = iota
	// PolicyBidirectional allows From→To and To→From.
	PolicyBidirectional
)

// Policy returns the traversal policy of the kind.
func (k Kind) Policy() Policy {
	if k == Spouse || k == Sibling {
		return PolicyBidirectional
	}

	return PolicyForward
}

// Direction tells whether an Arc walks its relationship as stored or reversed.
type Direction int

const (
	// Forward walks Rel.From → Rel.To.
	Forward Direction = iota
	// Reverse walks Rel.To → Rel.From.
	Reverse
)

// Person is a family member.
type Person struct {
	// ID uniquely identifies the person within a snapshot.
	ID string

	// Name is the display name used in kinship descriptions.
	Name string

	// BirthYear and DeathYear are optional.
	BirthYear *int
	DeathYear *int

	// Gender drives gendered wording; GenderUnknown yields neutral wording.
	Gender Gender

	// Metadata is free-form caller data. It is not copied.
	Metadata map[string]any
}

// DisplayName returns Name, or ID when Name is blank.
func (p Person) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return p.ID
	}

	return p.Name
}

// Relationship is a typed, weighted edge between two persons.
//
// Weight is a distance: 1 for a direct parent/child link, larger for looser
// links. Spouse and Sibling are symmetric but stored once.
type Relationship struct {
	ID       string
	From     string
	To       string
	Kind     Kind
	Weight   int64
	Metadata map[string]any
}

// Opposite returns the endpoint of r opposite to id, and false if id is not an endpoint.
func (r Relationship) Opposite(id string) (string, bool) {
	switch id {
	case r.From:
		return r.To, true
	case r.To:
		return r.From, true
	}

	return "", false
}

// Connects reports whether r joins a and b in either orientation.
func (r Relationship) Connects(a, b string) bool {
	return (r.From == a && r.To == b) || (r.From == b && r.To == a)
}

// Anomalies counts snapshot records dropped by NewGraph.
type Anomalies struct {
	DuplicatePersons       int
	EmptyPersonIDs         int
	DuplicateRelationships int
	DanglingRelationships  int
}

// Total returns the number of dropped records.
func (a Anomalies) Total() int {
	return a.DuplicatePersons + a.EmptyPersonIDs + a.DuplicateRelationships + a.DanglingRelationships
}

// Path is the result of a path search.
//
// For a non-empty path len(PersonIDs) == len(Relationships)+1 and
// Relationships[i] joins PersonIDs[i] and PersonIDs[i+1] in either orientation.
// The zero Path means "no path" (or source == target for unweighted search).
type Path struct {
	PersonIDs     []string
	Relationships []Relationship
	Weight        int64
}

// Len returns the number of relationships walked.
func (p Path) Len() int { return len(p.Relationships) }

// Empty reports whether the path walks no relationship.
func (p Path) Empty() bool { return len(p.Relationships) == 0 }

// Source returns the first person ID, or "" for an empty path.
func (p Path) Source() string {
	if len(p.PersonIDs) == 0 {
		return ""
	}

	return p.PersonIDs[0]
}

// Target returns the last person ID, or "" for an empty path.
func (p Path) Target() string {
	if len(p.PersonIDs) == 0 {
		return ""
	}

	return p.PersonIDs[len(p.PersonIDs)-1]
}
