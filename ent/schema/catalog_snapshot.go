package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CatalogSnapshot caches the server-declared filter catalog so the app can
// fall back to the last known-good values when a live /filters fetch fails.
// Entries older than the freshness window are never served.
type CatalogSnapshot struct {
	ent.Schema
}

func (CatalogSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("scope").
			NotEmpty().
			Unique().
			Comment("Cache key derived from qtype/exam/year the catalog was fetched for"),
		field.JSON("exams", []string{}).
			Comment("Valid exam names"),
		field.JSON("years", []int{}).
			Comment("Valid years"),
		field.JSON("subjects", []string{}).
			Comment("Valid subject names"),
		field.Time("fetched_at").
			Default(time.Now).
			Comment("When the catalog was fetched from the backend"),
	}
}

func (CatalogSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fetched_at"),
	}
}
