// internal/types/types.go
package types

// EntityID uniquely identifies an entity for the lifetime of a session.
// IDs are handed out by the entity manager and are never reused.
type EntityID uint64

// InvalidEntityID is the zero value; no live entity ever carries it.
const InvalidEntityID EntityID = 0
