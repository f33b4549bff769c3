// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/siftstack/sift/ent/dependencygraph"
	"github.com/siftstack/sift/ent/playbook"
	"github.com/siftstack/sift/pkg/models"
)

// DependencyGraphCreate is the builder for creating a DependencyGraph entity.
type DependencyGraphCreate struct {
	config
	mutation *DependencyGraphMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *DependencyGraphCreate) SetTenantID(v string) *DependencyGraphCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPlaybookID sets the "playbook_id" field.
func (_c *DependencyGraphCreate) SetPlaybookID(v string) *DependencyGraphCreate {
	_c.mutation.SetPlaybookID(v)
	return _c
}

// SetGraphEdges sets the "graph_edges" field.
func (_c *DependencyGraphCreate) SetGraphEdges(v []models.GraphEdge) *DependencyGraphCreate {
	_c.mutation.SetGraphEdges(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *DependencyGraphCreate) SetVersion(v int) *DependencyGraphCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *DependencyGraphCreate) SetNillableVersion(v *int) *DependencyGraphCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DependencyGraphCreate) SetCreatedAt(v time.Time) *DependencyGraphCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DependencyGraphCreate) SetNillableCreatedAt(v *time.Time) *DependencyGraphCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DependencyGraphCreate) SetUpdatedAt(v time.Time) *DependencyGraphCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DependencyGraphCreate) SetNillableUpdatedAt(v *time.Time) *DependencyGraphCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DependencyGraphCreate) SetID(v string) *DependencyGraphCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPlaybook sets the "playbook" edge to the Playbook entity.
func (_c *DependencyGraphCreate) SetPlaybook(v *Playbook) *DependencyGraphCreate {
	return _c.SetPlaybookID(v.ID)
}

// Mutation returns the DependencyGraphMutation object of the builder.
func (_c *DependencyGraphCreate) Mutation() *DependencyGraphMutation {
	return _c.mutation
}

// Save creates the DependencyGraph in the database.
func (_c *DependencyGraphCreate) Save(ctx context.Context) (*DependencyGraph, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DependencyGraphCreate) SaveX(ctx context.Context) *DependencyGraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DependencyGraphCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DependencyGraphCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DependencyGraphCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := dependencygraph.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dependencygraph.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dependencygraph.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DependencyGraphCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "DependencyGraph.tenant_id"`)}
	}
	if _, ok := _c.mutation.PlaybookID(); !ok {
		return &ValidationError{Name: "playbook_id", err: errors.New(`ent: missing required field "DependencyGraph.playbook_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "DependencyGraph.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DependencyGraph.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DependencyGraph.updated_at"`)}
	}
	if len(_c.mutation.PlaybookIDs()) == 0 {
		return &ValidationError{Name: "playbook", err: errors.New(`ent: missing required edge "DependencyGraph.playbook"`)}
	}
	return nil
}

func (_c *DependencyGraphCreate) sqlSave(ctx context.Context) (*DependencyGraph, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DependencyGraph.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DependencyGraphCreate) createSpec() (*DependencyGraph, *sqlgraph.CreateSpec) {
	var (
		_node = &DependencyGraph{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dependencygraph.Table, sqlgraph.NewFieldSpec(dependencygraph.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(dependencygraph.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.GraphEdges(); ok {
		_spec.SetField(dependencygraph.FieldGraphEdges, field.TypeJSON, value)
		_node.GraphEdges = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(dependencygraph.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dependencygraph.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dependencygraph.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PlaybookIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   dependencygraph.PlaybookTable,
			Columns: []string{dependencygraph.PlaybookColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(playbook.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PlaybookID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DependencyGraph.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DependencyGraphUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *DependencyGraphCreate) OnConflict(opts ...sql.ConflictOption) *DependencyGraphUpsertOne {
	_c.conflict = opts
	return &DependencyGraphUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DependencyGraph.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DependencyGraphCreate) OnConflictColumns(columns ...string) *DependencyGraphUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DependencyGraphUpsertOne{
		create: _c,
	}
}

type (
	// DependencyGraphUpsertOne is the builder for "upsert"-ing
	//  one DependencyGraph node.
	DependencyGraphUpsertOne struct {
		create *DependencyGraphCreate
	}

	// DependencyGraphUpsert is the "OnConflict" setter.
	DependencyGraphUpsert struct {
		*sql.UpdateSet
	}
)

// SetGraphEdges sets the "graph_edges" field.
func (u *DependencyGraphUpsert) SetGraphEdges(v []models.GraphEdge) *DependencyGraphUpsert {
	u.Set(dependencygraph.FieldGraphEdges, v)
	return u
}

// UpdateGraphEdges sets the "graph_edges" field to the value that was provided on create.
func (u *DependencyGraphUpsert) UpdateGraphEdges() *DependencyGraphUpsert {
	u.SetExcluded(dependencygraph.FieldGraphEdges)
	return u
}

// ClearGraphEdges clears the value of the "graph_edges" field.
func (u *DependencyGraphUpsert) ClearGraphEdges() *DependencyGraphUpsert {
	u.SetNull(dependencygraph.FieldGraphEdges)
	return u
}

// SetVersion sets the "version" field.
func (u *DependencyGraphUpsert) SetVersion(v int) *DependencyGraphUpsert {
	u.Set(dependencygraph.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *DependencyGraphUpsert) UpdateVersion() *DependencyGraphUpsert {
	u.SetExcluded(dependencygraph.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *DependencyGraphUpsert) AddVersion(v int) *DependencyGraphUpsert {
	u.Add(dependencygraph.FieldVersion, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DependencyGraphUpsert) SetUpdatedAt(v time.Time) *DependencyGraphUpsert {
	u.Set(dependencygraph.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DependencyGraphUpsert) UpdateUpdatedAt() *DependencyGraphUpsert {
	u.SetExcluded(dependencygraph.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DependencyGraph.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dependencygraph.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DependencyGraphUpsertOne) UpdateNewValues() *DependencyGraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dependencygraph.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(dependencygraph.FieldTenantID)
		}
		if _, exists := u.create.mutation.PlaybookID(); exists {
			s.SetIgnore(dependencygraph.FieldPlaybookID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dependencygraph.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DependencyGraph.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DependencyGraphUpsertOne) Ignore() *DependencyGraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DependencyGraphUpsertOne) DoNothing() *DependencyGraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DependencyGraphCreate.OnConflict
// documentation for more info.
func (u *DependencyGraphUpsertOne) Update(set func(*DependencyGraphUpsert)) *DependencyGraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DependencyGraphUpsert{UpdateSet: update})
	}))
	return u
}

// SetGraphEdges sets the "graph_edges" field.
func (u *DependencyGraphUpsertOne) SetGraphEdges(v []models.GraphEdge) *DependencyGraphUpsertOne {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.SetGraphEdges(v)
	})
}

// UpdateGraphEdges sets the "graph_edges" field to the value that was provided on create.
func (u *DependencyGraphUpsertOne) UpdateGraphEdges() *DependencyGraphUpsertOne {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.UpdateGraphEdges()
	})
}

// ClearGraphEdges clears the value of the "graph_edges" field.
func (u *DependencyGraphUpsertOne) ClearGraphEdges() *DependencyGraphUpsertOne {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.ClearGraphEdges()
	})
}

// SetVersion sets the "version" field.
func (u *DependencyGraphUpsertOne) SetVersion(v int) *DependencyGraphUpsertOne {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *DependencyGraphUpsertOne) AddVersion(v int) *DependencyGraphUpsertOne {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *DependencyGraphUpsertOne) UpdateVersion() *DependencyGraphUpsertOne {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DependencyGraphUpsertOne) SetUpdatedAt(v time.Time) *DependencyGraphUpsertOne {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DependencyGraphUpsertOne) UpdateUpdatedAt() *DependencyGraphUpsertOne {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DependencyGraphUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DependencyGraphCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DependencyGraphUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DependencyGraphUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DependencyGraphUpsertOne.ID is not supported by MySQL driver. Use DependencyGraphUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DependencyGraphUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DependencyGraphCreateBulk is the builder for creating many DependencyGraph entities in bulk.
type DependencyGraphCreateBulk struct {
	config
	err      error
	builders []*DependencyGraphCreate
	conflict []sql.ConflictOption
}

// Save creates the DependencyGraph entities in the database.
func (_c *DependencyGraphCreateBulk) Save(ctx context.Context) ([]*DependencyGraph, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DependencyGraph, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DependencyGraphMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *DependencyGraphCreateBulk) SaveX(ctx context.Context) []*DependencyGraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DependencyGraphCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DependencyGraphCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DependencyGraph.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DependencyGraphUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *DependencyGraphCreateBulk) OnConflict(opts ...sql.ConflictOption) *DependencyGraphUpsertBulk {
	_c.conflict = opts
	return &DependencyGraphUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DependencyGraph.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DependencyGraphCreateBulk) OnConflictColumns(columns ...string) *DependencyGraphUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DependencyGraphUpsertBulk{
		create: _c,
	}
}

// DependencyGraphUpsertBulk is the builder for "upsert"-ing
// a bulk of DependencyGraph nodes.
type DependencyGraphUpsertBulk struct {
	create *DependencyGraphCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DependencyGraph.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dependencygraph.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DependencyGraphUpsertBulk) UpdateNewValues() *DependencyGraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dependencygraph.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(dependencygraph.FieldTenantID)
			}
			if _, exists := b.mutation.PlaybookID(); exists {
				s.SetIgnore(dependencygraph.FieldPlaybookID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dependencygraph.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DependencyGraph.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DependencyGraphUpsertBulk) Ignore() *DependencyGraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DependencyGraphUpsertBulk) DoNothing() *DependencyGraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DependencyGraphCreateBulk.OnConflict
// documentation for more info.
func (u *DependencyGraphUpsertBulk) Update(set func(*DependencyGraphUpsert)) *DependencyGraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DependencyGraphUpsert{UpdateSet: update})
	}))
	return u
}

// SetGraphEdges sets the "graph_edges" field.
func (u *DependencyGraphUpsertBulk) SetGraphEdges(v []models.GraphEdge) *DependencyGraphUpsertBulk {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.SetGraphEdges(v)
	})
}

// UpdateGraphEdges sets the "graph_edges" field to the value that was provided on create.
func (u *DependencyGraphUpsertBulk) UpdateGraphEdges() *DependencyGraphUpsertBulk {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.UpdateGraphEdges()
	})
}

// ClearGraphEdges clears the value of the "graph_edges" field.
func (u *DependencyGraphUpsertBulk) ClearGraphEdges() *DependencyGraphUpsertBulk {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.ClearGraphEdges()
	})
}

// SetVersion sets the "version" field.
func (u *DependencyGraphUpsertBulk) SetVersion(v int) *DependencyGraphUpsertBulk {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *DependencyGraphUpsertBulk) AddVersion(v int) *DependencyGraphUpsertBulk {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *DependencyGraphUpsertBulk) UpdateVersion() *DependencyGraphUpsertBulk {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DependencyGraphUpsertBulk) SetUpdatedAt(v time.Time) *DependencyGraphUpsertBulk {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DependencyGraphUpsertBulk) UpdateUpdatedAt() *DependencyGraphUpsertBulk {
	return u.Update(func(s *DependencyGraphUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DependencyGraphUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DependencyGraphCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DependencyGraphCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DependencyGraphUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
