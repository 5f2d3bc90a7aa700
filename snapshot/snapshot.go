package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// MaxSnapshotSize bounds the bytes read from one snapshot.
const MaxSnapshotSize = 32 << 20

// DefaultWeight is used for relationships that declare no weight.
const DefaultWeight int64 = 1

var (
	// ErrEmptyDocument is returned when the snapshot holds no document.
	ErrEmptyDocument = errors.New("snapshot: empty document")

	// ErrTooLarge is returned when the snapshot exceeds MaxSnapshotSize.
	ErrTooLarge = errors.New("snapshot: document too large")

	// ErrInvalidRecord is returned for a person or relationship that cannot
	// be converted.
	ErrInvalidRecord = errors.New("snapshot: invalid record")
)

// relationshipNamespace seeds derived relationship ids.
var relationshipNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:kinship:relationship"))

// Document is the on-disk shape of a snapshot.
type Document struct {
	Persons       []PersonRecord       `yaml:"persons"`
	Relationships []RelationshipRecord `yaml:"relationships"`
}

// PersonRecord is one entry of Document.Persons.
type PersonRecord struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name,omitempty"`
	BirthYear *int           `yaml:"birthYear,omitempty"`
	DeathYear *int           `yaml:"deathYear,omitempty"`
	Gender    string         `yaml:"gender,omitempty"`
	Metadata  map[string]any `yaml:"metadata,omitempty"`
}

// RelationshipRecord is one entry of Document.Relationships.
type RelationshipRecord struct {
	ID       string         `yaml:"id,omitempty"`
	From     string         `yaml:"from"`
	To       string         `yaml:"to"`
	Type     string         `yaml:"type"`
	Weight   *int64         `yaml:"weight,omitempty"`
	Metadata map[string]any `yaml:"metadata,omitempty"`
}

// Load reads the snapshot file at path.
func Load(path string) (*family.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode reads one snapshot document from r.
func Decode(r io.Reader) (*family.Graph, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSnapshotSize+1))
	if err != nil {
		return nil, fmt.Errorf("snapshot: read: %w", err)
	}
	if len(data) > MaxSnapshotSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxSnapshotSize)
	}

	return Parse(data)
}

// Parse converts snapshot bytes into a graph.
func Parse(data []byte) (*family.Graph, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshaling: %w", err)
	}

	return doc.Graph()
}

// Graph converts the document into a graph.
func (d Document) Graph() (*family.Graph, error) {
	persons := make([]family.Person, 0, len(d.Persons))
	for i, rec := range d.Persons {
		gender, err := family.ParseGender(rec.Gender)
		if err != nil {
			return nil, fmt.Errorf("%w: person %d (%q): %w", ErrInvalidRecord, i, rec.ID, err)
		}
		persons = append(persons, family.Person{
			ID:        strings.TrimSpace(rec.ID),
			Name:      rec.Name,
			BirthYear: rec.BirthYear,
			DeathYear: rec.DeathYear,
			Gender:    gender,
			Metadata:  rec.Metadata,
		})
	}

	rels := make([]family.Relationship, 0, len(d.Relationships))
	for i, rec := range d.Relationships {
		kind, err := family.ParseKind(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: relationship %d (%s -> %s): %w", ErrInvalidRecord, i, rec.From, rec.To, err)
		}
		weight := DefaultWeight
		if rec.Weight != nil {
			weight = *rec.Weight
		}
		from, to := strings.TrimSpace(rec.From), strings.TrimSpace(rec.To)
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			id = RelationshipID(from, to, kind)
		}
		rels = append(rels, family.Relationship{
			ID:       id,
			From:     from,
			To:       to,
			Kind:     kind,
			Weight:   weight,
			Metadata: rec.Metadata,
		})
	}

	return family.NewGraph(persons, rels), nil
}

// RelationshipID derives the id of a relationship that was stored without one.
func RelationshipID(from, to string, kind family.Kind) string {
	name := from + "\x00" + to + "\x00" + kind.String()

	return uuid.NewSHA1(relationshipNamespace, []byte(name)).String()
}
