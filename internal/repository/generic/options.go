package generic

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Mapper translates between the domain entity E and its persisted
// document shape D. Implementations carry no business logic.
type Mapper[E, D any] interface {
	ToDomain(doc *D) *E
	ToPersistence(entity *E) *D
	// ID returns the primary identifier of the entity.
	ID(entity *E) string
}

// UpdateMapper is an optional extension: a mapper that knows how to
// produce a partial $set document for full-entity updates. Without it
// the repository falls back to the ToPersistence shape.
type UpdateMapper[E any] interface {
	ToUpdate(entity *E) bson.M
}

// Timestamped entities get their created/updated markers stamped by the
// repository when the timestamps feature is enabled.
type Timestamped interface {
	Touch(now time.Time)
}

// Options configures the feature set of one repository instance. The
// same core serves every catalog entity; behavior differences live
// here instead of in copied CRUD code.
type Options[F any] struct {
	// Entity name used in wrapped errors and logs.
	Name string
	// Mark documents deleted instead of removing them; default reads
	// then exclude the marked documents.
	SoftDelete bool
	// Stamp created_at/updated_at on writes.
	Timestamps bool
	// Alternative identifier field accepted by id lookups in addition
	// to _id, e.g. a legacy external id.
	SecondaryIDField string
	// CustomFilter translates the entity's typed filter into a bson
	// fragment. Merged with the soft-delete predicate by the engine.
	CustomFilter func(F) bson.M
}
