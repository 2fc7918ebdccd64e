// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/exampartner/cli/ent/catalogsnapshot"
	"github.com/exampartner/cli/ent/predicate"
)

// CatalogSnapshotUpdate is the builder for updating CatalogSnapshot entities.
type CatalogSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *CatalogSnapshotMutation
}

// Where appends a list predicates to the CatalogSnapshotUpdate builder.
func (_u *CatalogSnapshotUpdate) Where(ps ...predicate.CatalogSnapshot) *CatalogSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScope sets the "scope" field.
func (_u *CatalogSnapshotUpdate) SetScope(v string) *CatalogSnapshotUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *CatalogSnapshotUpdate) SetNillableScope(v *string) *CatalogSnapshotUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetExams sets the "exams" field.
func (_u *CatalogSnapshotUpdate) SetExams(v []string) *CatalogSnapshotUpdate {
	_u.mutation.SetExams(v)
	return _u
}

// AppendExams appends value to the "exams" field.
func (_u *CatalogSnapshotUpdate) AppendExams(v []string) *CatalogSnapshotUpdate {
	_u.mutation.AppendExams(v)
	return _u
}

// SetYears sets the "years" field.
func (_u *CatalogSnapshotUpdate) SetYears(v []int) *CatalogSnapshotUpdate {
	_u.mutation.SetYears(v)
	return _u
}

// AppendYears appends value to the "years" field.
func (_u *CatalogSnapshotUpdate) AppendYears(v []int) *CatalogSnapshotUpdate {
	_u.mutation.AppendYears(v)
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *CatalogSnapshotUpdate) SetSubjects(v []string) *CatalogSnapshotUpdate {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *CatalogSnapshotUpdate) AppendSubjects(v []string) *CatalogSnapshotUpdate {
	_u.mutation.AppendSubjects(v)
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *CatalogSnapshotUpdate) SetFetchedAt(v time.Time) *CatalogSnapshotUpdate {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *CatalogSnapshotUpdate) SetNillableFetchedAt(v *time.Time) *CatalogSnapshotUpdate {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// Mutation returns the CatalogSnapshotMutation object of the builder.
func (_u *CatalogSnapshotUpdate) Mutation() *CatalogSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CatalogSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CatalogSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogSnapshotUpdate) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := catalogsnapshot.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "CatalogSnapshot.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *CatalogSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogsnapshot.Table, catalogsnapshot.Columns, sqlgraph.NewFieldSpec(catalogsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(catalogsnapshot.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exams(); ok {
		_spec.SetField(catalogsnapshot.FieldExams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogsnapshot.FieldExams, value)
		})
	}
	if value, ok := _u.mutation.Years(); ok {
		_spec.SetField(catalogsnapshot.FieldYears, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedYears(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogsnapshot.FieldYears, value)
		})
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(catalogsnapshot.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogsnapshot.FieldSubjects, value)
		})
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(catalogsnapshot.FieldFetchedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CatalogSnapshotUpdateOne is the builder for updating a single CatalogSnapshot entity.
type CatalogSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CatalogSnapshotMutation
}

// SetScope sets the "scope" field.
func (_u *CatalogSnapshotUpdateOne) SetScope(v string) *CatalogSnapshotUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *CatalogSnapshotUpdateOne) SetNillableScope(v *string) *CatalogSnapshotUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetExams sets the "exams" field.
func (_u *CatalogSnapshotUpdateOne) SetExams(v []string) *CatalogSnapshotUpdateOne {
	_u.mutation.SetExams(v)
	return _u
}

// AppendExams appends value to the "exams" field.
func (_u *CatalogSnapshotUpdateOne) AppendExams(v []string) *CatalogSnapshotUpdateOne {
	_u.mutation.AppendExams(v)
	return _u
}

// SetYears sets the "years" field.
func (_u *CatalogSnapshotUpdateOne) SetYears(v []int) *CatalogSnapshotUpdateOne {
	_u.mutation.SetYears(v)
	return _u
}

// AppendYears appends value to the "years" field.
func (_u *CatalogSnapshotUpdateOne) AppendYears(v []int) *CatalogSnapshotUpdateOne {
	_u.mutation.AppendYears(v)
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *CatalogSnapshotUpdateOne) SetSubjects(v []string) *CatalogSnapshotUpdateOne {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *CatalogSnapshotUpdateOne) AppendSubjects(v []string) *CatalogSnapshotUpdateOne {
	_u.mutation.AppendSubjects(v)
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *CatalogSnapshotUpdateOne) SetFetchedAt(v time.Time) *CatalogSnapshotUpdateOne {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *CatalogSnapshotUpdateOne) SetNillableFetchedAt(v *time.Time) *CatalogSnapshotUpdateOne {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// Mutation returns the CatalogSnapshotMutation object of the builder.
func (_u *CatalogSnapshotUpdateOne) Mutation() *CatalogSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the CatalogSnapshotUpdate builder.
func (_u *CatalogSnapshotUpdateOne) Where(ps ...predicate.CatalogSnapshot) *CatalogSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CatalogSnapshotUpdateOne) Select(field string, fields ...string) *CatalogSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CatalogSnapshot entity.
func (_u *CatalogSnapshotUpdateOne) Save(ctx context.Context) (*CatalogSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogSnapshotUpdateOne) SaveX(ctx context.Context) *CatalogSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CatalogSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := catalogsnapshot.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "CatalogSnapshot.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *CatalogSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *CatalogSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogsnapshot.Table, catalogsnapshot.Columns, sqlgraph.NewFieldSpec(catalogsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CatalogSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, catalogsnapshot.FieldID)
		for _, f := range fields {
			if !catalogsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != catalogsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(catalogsnapshot.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exams(); ok {
		_spec.SetField(catalogsnapshot.FieldExams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogsnapshot.FieldExams, value)
		})
	}
	if value, ok := _u.mutation.Years(); ok {
		_spec.SetField(catalogsnapshot.FieldYears, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedYears(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogsnapshot.FieldYears, value)
		})
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(catalogsnapshot.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, catalogsnapshot.FieldSubjects, value)
		})
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(catalogsnapshot.FieldFetchedAt, field.TypeTime, value)
	}
	_node = &CatalogSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
