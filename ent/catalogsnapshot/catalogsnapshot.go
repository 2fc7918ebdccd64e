// Code generated by ent, DO NOT EDIT.

package catalogsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the catalogsnapshot type in the database.
	Label = "catalog_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldExams holds the string denoting the exams field in the database.
	FieldExams = "exams"
	// FieldYears holds the string denoting the years field in the database.
	FieldYears = "years"
	// FieldSubjects holds the string denoting the subjects field in the database.
	FieldSubjects = "subjects"
	// FieldFetchedAt holds the string denoting the fetched_at field in the database.
	FieldFetchedAt = "fetched_at"
	// Table holds the table name of the catalogsnapshot in the database.
	Table = "catalog_snapshots"
)

// Columns holds all SQL columns for catalogsnapshot fields.
var Columns = []string{
	FieldID,
	FieldScope,
	FieldExams,
	FieldYears,
	FieldSubjects,
	FieldFetchedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ScopeValidator is a validator for the "scope" field. It is called by the builders before save.
	ScopeValidator func(string) error
	// DefaultFetchedAt holds the default value on creation for the "fetched_at" field.
	DefaultFetchedAt func() time.Time
)

// OrderOption defines the ordering options for the CatalogSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByFetchedAt orders the results by the fetched_at field.
func ByFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedAt, opts...).ToFunc()
}
