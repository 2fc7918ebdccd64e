// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/exampartner/cli/ent/catalogsnapshot"
)

// CatalogSnapshot is the model entity for the CatalogSnapshot schema.
type CatalogSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Cache key derived from qtype/exam/year the catalog was fetched for
	Scope string `json:"scope,omitempty"`
	// Valid exam names
	Exams []string `json:"exams,omitempty"`
	// Valid years
	Years []int `json:"years,omitempty"`
	// Valid subject names
	Subjects []string `json:"subjects,omitempty"`
	// When the catalog was fetched from the backend
	FetchedAt    time.Time `json:"fetched_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CatalogSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case catalogsnapshot.FieldExams, catalogsnapshot.FieldYears, catalogsnapshot.FieldSubjects:
			values[i] = new([]byte)
		case catalogsnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case catalogsnapshot.FieldScope:
			values[i] = new(sql.NullString)
		case catalogsnapshot.FieldFetchedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CatalogSnapshot fields.
func (_m *CatalogSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case catalogsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case catalogsnapshot.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		case catalogsnapshot.FieldExams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exams", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Exams); err != nil {
					return fmt.Errorf("unmarshal field exams: %w", err)
				}
			}
		case catalogsnapshot.FieldYears:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field years", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Years); err != nil {
					return fmt.Errorf("unmarshal field years: %w", err)
				}
			}
		case catalogsnapshot.FieldSubjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subjects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Subjects); err != nil {
					return fmt.Errorf("unmarshal field subjects: %w", err)
				}
			}
		case catalogsnapshot.FieldFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_at", values[i])
			} else if value.Valid {
				_m.FetchedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CatalogSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *CatalogSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CatalogSnapshot.
// Note that you need to call CatalogSnapshot.Unwrap() before calling this method if this CatalogSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CatalogSnapshot) Update() *CatalogSnapshotUpdateOne {
	return NewCatalogSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CatalogSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CatalogSnapshot) Unwrap() *CatalogSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CatalogSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CatalogSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("CatalogSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteString(", ")
	builder.WriteString("exams=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exams))
	builder.WriteString(", ")
	builder.WriteString("years=")
	builder.WriteString(fmt.Sprintf("%v", _m.Years))
	builder.WriteString(", ")
	builder.WriteString("subjects=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subjects))
	builder.WriteString(", ")
	builder.WriteString("fetched_at=")
	builder.WriteString(_m.FetchedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CatalogSnapshots is a parsable slice of CatalogSnapshot.
type CatalogSnapshots []*CatalogSnapshot
