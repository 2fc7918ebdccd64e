package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting is a single durable key/value pair. Only keys whose durability
// policy is Durable end up here; session-scoped keys never touch the
// database.
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Setting key, e.g. filter_exam"),
		field.String("value").
			Comment("Raw string value; empty string is a valid value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}
