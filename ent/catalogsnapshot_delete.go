// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/exampartner/cli/ent/catalogsnapshot"
	"github.com/exampartner/cli/ent/predicate"
)

// CatalogSnapshotDelete is the builder for deleting a CatalogSnapshot entity.
type CatalogSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *CatalogSnapshotMutation
}

// Where appends a list predicates to the CatalogSnapshotDelete builder.
func (_d *CatalogSnapshotDelete) Where(ps ...predicate.CatalogSnapshot) *CatalogSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CatalogSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CatalogSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CatalogSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(catalogsnapshot.Table, sqlgraph.NewFieldSpec(catalogsnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CatalogSnapshotDeleteOne is the builder for deleting a single CatalogSnapshot entity.
type CatalogSnapshotDeleteOne struct {
	_d *CatalogSnapshotDelete
}

// Where appends a list predicates to the CatalogSnapshotDelete builder.
func (_d *CatalogSnapshotDeleteOne) Where(ps ...predicate.CatalogSnapshot) *CatalogSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CatalogSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{catalogsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CatalogSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
