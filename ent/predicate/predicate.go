// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CatalogSnapshot is the predicate function for catalogsnapshot builders.
type CatalogSnapshot func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
