// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/exampartner/cli/ent/catalogsnapshot"
)

// CatalogSnapshotCreate is the builder for creating a CatalogSnapshot entity.
type CatalogSnapshotCreate struct {
	config
	mutation *CatalogSnapshotMutation
	hooks    []Hook
}

// SetScope sets the "scope" field.
func (_c *CatalogSnapshotCreate) SetScope(v string) *CatalogSnapshotCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetExams sets the "exams" field.
func (_c *CatalogSnapshotCreate) SetExams(v []string) *CatalogSnapshotCreate {
	_c.mutation.SetExams(v)
	return _c
}

// SetYears sets the "years" field.
func (_c *CatalogSnapshotCreate) SetYears(v []int) *CatalogSnapshotCreate {
	_c.mutation.SetYears(v)
	return _c
}

// SetSubjects sets the "subjects" field.
func (_c *CatalogSnapshotCreate) SetSubjects(v []string) *CatalogSnapshotCreate {
	_c.mutation.SetSubjects(v)
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *CatalogSnapshotCreate) SetFetchedAt(v time.Time) *CatalogSnapshotCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_c *CatalogSnapshotCreate) SetNillableFetchedAt(v *time.Time) *CatalogSnapshotCreate {
	if v != nil {
		_c.SetFetchedAt(*v)
	}
	return _c
}

// Mutation returns the CatalogSnapshotMutation object of the builder.
func (_c *CatalogSnapshotCreate) Mutation() *CatalogSnapshotMutation {
	return _c.mutation
}

// Save creates the CatalogSnapshot in the database.
func (_c *CatalogSnapshotCreate) Save(ctx context.Context) (*CatalogSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CatalogSnapshotCreate) SaveX(ctx context.Context) *CatalogSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CatalogSnapshotCreate) defaults() {
	if _, ok := _c.mutation.FetchedAt(); !ok {
		v := catalogsnapshot.DefaultFetchedAt()
		_c.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CatalogSnapshotCreate) check() error {
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "CatalogSnapshot.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := catalogsnapshot.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "CatalogSnapshot.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Exams(); !ok {
		return &ValidationError{Name: "exams", err: errors.New(`ent: missing required field "CatalogSnapshot.exams"`)}
	}
	if _, ok := _c.mutation.Years(); !ok {
		return &ValidationError{Name: "years", err: errors.New(`ent: missing required field "CatalogSnapshot.years"`)}
	}
	if _, ok := _c.mutation.Subjects(); !ok {
		return &ValidationError{Name: "subjects", err: errors.New(`ent: missing required field "CatalogSnapshot.subjects"`)}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "CatalogSnapshot.fetched_at"`)}
	}
	return nil
}

func (_c *CatalogSnapshotCreate) sqlSave(ctx context.Context) (*CatalogSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CatalogSnapshotCreate) createSpec() (*CatalogSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &CatalogSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(catalogsnapshot.Table, sqlgraph.NewFieldSpec(catalogsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(catalogsnapshot.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Exams(); ok {
		_spec.SetField(catalogsnapshot.FieldExams, field.TypeJSON, value)
		_node.Exams = value
	}
	if value, ok := _c.mutation.Years(); ok {
		_spec.SetField(catalogsnapshot.FieldYears, field.TypeJSON, value)
		_node.Years = value
	}
	if value, ok := _c.mutation.Subjects(); ok {
		_spec.SetField(catalogsnapshot.FieldSubjects, field.TypeJSON, value)
		_node.Subjects = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(catalogsnapshot.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	return _node, _spec
}

// CatalogSnapshotCreateBulk is the builder for creating many CatalogSnapshot entities in bulk.
type CatalogSnapshotCreateBulk struct {
	config
	err      error
	builders []*CatalogSnapshotCreate
}

// Save creates the CatalogSnapshot entities in the database.
func (_c *CatalogSnapshotCreateBulk) Save(ctx context.Context) ([]*CatalogSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CatalogSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CatalogSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CatalogSnapshotCreateBulk) SaveX(ctx context.Context) []*CatalogSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
