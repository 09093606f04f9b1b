// Package query builds and combines bson filter fragments. Fragments
// are produced independently (access control, free-text search, range
// bounds, feature filters) and folded together with Merge, which keeps
// the result equivalent to the logical AND of its inputs.
package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/helioward/solar-crm/internal/model"
)

// Merge combines two fragments so that a document matches the result
// iff it matches both inputs. The dangerous case is two fragments that
// each carry a top-level $or: a plain key-wise merge would let one
// group silently overwrite the other, turning an AND of two ORs into a
// single OR. Merge moves colliding groups (and colliding plain keys)
// into an $and list instead.
func Merge(a, b bson.M) bson.M {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}

	out := bson.M{}
	var and []any

	// Pre-existing $and lists from either side are carried over.
	for _, m := range []bson.M{a, b} {
		if v, ok := m["$and"]; ok {
			switch terms := v.(type) {
			case []any:
				and = append(and, terms...)
			case []bson.M:
				for _, t := range terms {
					and = append(and, t)
				}
			default:
				and = append(and, v)
			}
		}
	}

	aOr, aHasOr := a["$or"]
	bOr, bHasOr := b["$or"]
	switch {
	case aHasOr && bHasOr:
		and = append(and, bson.M{"$or": aOr}, bson.M{"$or": bOr})
	case aHasOr:
		out["$or"] = aOr
	case bHasOr:
		out["$or"] = bOr
	}

	for k, v := range a {
		if k == "$or" || k == "$and" {
			continue
		}
		out[k] = v
	}
	for k, v := range b {
		if k == "$or" || k == "$and" {
			continue
		}
		if prev, ok := out[k]; ok {
			// Same field constrained by both sides: keep both.
			delete(out, k)
			and = append(and, bson.M{k: prev}, bson.M{k: v})
			continue
		}
		out[k] = v
	}

	if len(and) > 0 {
		out["$and"] = and
	}
	return out
}

// Access builds the visibility predicate. A caller with a team sees its
// own records plus public ones; a caller without a team sees public
// records only.
func Access(scope string) bson.M {
	if scope == "" || scope == model.ScopePublic {
		return bson.M{"scope": model.ScopePublic}
	}
	return bson.M{"$or": []bson.M{
		{"scope": scope},
		{"scope": model.ScopePublic},
	}}
}

// Search builds a case-insensitive substring match across the given
// fields. The term is quoted so user input cannot inject regex syntax.
func Search(term string, fields ...string) bson.M {
	if term == "" || len(fields) == 0 {
		return bson.M{}
	}
	pattern := regexp.QuoteMeta(term)
	if len(fields) == 1 {
		return bson.M{fields[0]: bson.M{"$regex": pattern, "$options": "i"}}
	}
	ors := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		ors = append(ors, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	return bson.M{"$or": ors}
}

// Range builds a closed-interval predicate on field, omitting unset
// bounds. Both bounds unset yields an empty fragment.
func Range(field string, min, max *float64) bson.M {
	bounds := bson.M{}
	if min != nil {
		bounds["$gte"] = *min
	}
	if max != nil {
		bounds["$lte"] = *max
	}
	if len(bounds) == 0 {
		return bson.M{}
	}
	return bson.M{field: bounds}
}

// NotDeleted excludes soft-deleted documents. Written as $ne so legacy
// documents without the flag still match.
func NotDeleted() bson.M {
	return bson.M{"is_deleted": bson.M{"$ne": true}}
}
