// Package kinship turns a relationship path between two persons into a
// human-readable kinship label such as "grandmother", "cousin" or
// "brother-in-law".
//
// A Classifier indexes the whole family once (parents, children, spouses and
// explicitly recorded siblings) and then classifies any number of paths.
// Rules are tried in a fixed order and the first match wins:
//
//  1. Same person.
//  2. Direct relationship: a path of length 1, labelled by its kind. For a
//     parent-child relationship the direction decides parent or child.
//  3. Blood relations derived from the family, not from the path: sibling,
//     half-sibling, grandparent, grandchild, great-grandparent,
//     great-grandchild, cousin, parent's sibling and sibling's child.
//  4. Relations by marriage: sibling-in-law, parent-in-law and child-in-law.
//  5. Fallback on path length. Three parent-child or sibling steps read as
//     cousin, more than six as a distant relative, anything else as related
//     through the extended family.
//
// Steps 3 and 5 can disagree about cousins: the structural test needs a
// shared grandparent, the fallback only looks at the path shape. The
// structural test runs first.
//
// Labels always describe the target as seen from the source and use the
// target's gender. Unknown or other genders get neutral wording ("parent",
// "sibling's child").
//
// A path that walks through a person missing from the family skips steps 2
// to 4. Unknown endpoints, or an empty path between two different persons,
// yield None ("no relation found"). Classification never fails.
package kinship
