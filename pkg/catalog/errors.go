package catalog

import "errors"

var (
	// ErrSchemaViolation covers structural problems in a submitted
	// definition: output schema over the key cap, unknown tools, bad
	// enum values, duplicate playbook members.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrBadReference means a referenced entity does not exist: an
	// absent dependency parent, a playbook member with no definition,
	// an unknown template.
	ErrBadReference = errors.New("bad reference")

	// ErrClassMismatch means a reference crosses agent classes, e.g. a
	// query playbook listing an ingest agent.
	ErrClassMismatch = errors.New("class mismatch")

	// ErrBuiltinImmutable rejects writes against built-in definitions.
	ErrBuiltinImmutable = errors.New("builtin definitions are immutable")

	// ErrNotFound is returned by lookups for absent entities.
	ErrNotFound = errors.New("not found")
)
