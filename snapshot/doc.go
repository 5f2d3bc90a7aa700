// Package snapshot reads a family snapshot file into a *family.Graph.
//
// The format is YAML; JSON documents load too since JSON is valid YAML flow
// syntax:
//
//	persons:
//	  - {id: mara, name: Mara, gender: female, birthYear: 1950}
//	  - {id: jon, name: Jon, gender: male}
//	relationships:
//	  - {from: mara, to: jon, type: parent-child, weight: 1}
//
// A relationship without an id gets a name-based UUID derived from its
// endpoints and type, so reloading the same file yields the same ids. A
// missing weight defaults to 1.
//
// Structural problems the graph tolerates (dangling references, duplicate
// ids) are left to family.NewGraph, which counts them. Unknown types or
// genders and malformed documents are errors.
package snapshot
