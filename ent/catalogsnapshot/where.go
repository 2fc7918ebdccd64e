// Code generated by ent, DO NOT EDIT.

package catalogsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/exampartner/cli/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldLTE(FieldID, id))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldEQ(FieldScope, v))
}

// FetchedAt applies equality check predicate on the "fetched_at" field. It's identical to FetchedAtEQ.
func FetchedAt(v time.Time) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldEQ(FieldFetchedAt, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldContainsFold(FieldScope, v))
}

// FetchedAtEQ applies the EQ predicate on the "fetched_at" field.
func FetchedAtEQ(v time.Time) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldEQ(FieldFetchedAt, v))
}

// FetchedAtNEQ applies the NEQ predicate on the "fetched_at" field.
func FetchedAtNEQ(v time.Time) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldNEQ(FieldFetchedAt, v))
}

// FetchedAtIn applies the In predicate on the "fetched_at" field.
func FetchedAtIn(vs ...time.Time) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldIn(FieldFetchedAt, vs...))
}

// FetchedAtNotIn applies the NotIn predicate on the "fetched_at" field.
func FetchedAtNotIn(vs ...time.Time) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldNotIn(FieldFetchedAt, vs...))
}

// FetchedAtGT applies the GT predicate on the "fetched_at" field.
func FetchedAtGT(v time.Time) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldGT(FieldFetchedAt, v))
}

// FetchedAtGTE applies the GTE predicate on the "fetched_at" field.
func FetchedAtGTE(v time.Time) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldGTE(FieldFetchedAt, v))
}

// FetchedAtLT applies the LT predicate on the "fetched_at" field.
func FetchedAtLT(v time.Time) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldLT(FieldFetchedAt, v))
}

// FetchedAtLTE applies the LTE predicate on the "fetched_at" field.
func FetchedAtLTE(v time.Time) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.FieldLTE(FieldFetchedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CatalogSnapshot) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CatalogSnapshot) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CatalogSnapshot) predicate.CatalogSnapshot {
	return predicate.CatalogSnapshot(sql.NotPredicates(p))
}
