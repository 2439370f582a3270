// Package slug provides interfaces for types to be in compliance with.
package slug

// Codec defines a bidirectional mapping between a link identifier and its public slug.
//
// Encode must be deterministic and injective over all identifiers the system
// generates. Decode must reject any string Encode could not have produced and
// never panic on attacker-supplied input.
type Codec interface {
	Encode(id int64) (slug string, err error)
	Decode(slug string) (id int64, err error)
}
