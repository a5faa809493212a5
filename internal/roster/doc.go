// Package roster models player records and loads the source/target datasets
// the matching pipeline consumes.
//
// A Record is an opaque field map decoded from JSON; only a handful of
// fields are interpreted (the identifier aliases, "name") and the rest pass
// through into report output untouched. Records are never mutated after
// load — every downstream stage works on derived views.
//
// Identifier resolution probes a fixed ordered alias list and falls back to
// a generic "id" field only when its value is integer-like, so free-text ids
// never masquerade as Transfermarkt identifiers.
package roster
