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
)

// PlaybookCreate is the builder for creating a Playbook entity.
type PlaybookCreate struct {
	config
	mutation *PlaybookMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *PlaybookCreate) SetTenantID(v string) *PlaybookCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetDomainID sets the "domain_id" field.
func (_c *PlaybookCreate) SetDomainID(v string) *PlaybookCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetClass sets the "class" field.
func (_c *PlaybookCreate) SetClass(v playbook.Class) *PlaybookCreate {
	_c.mutation.SetClass(v)
	return _c
}

// SetAgentKeys sets the "agent_keys" field.
func (_c *PlaybookCreate) SetAgentKeys(v []string) *PlaybookCreate {
	_c.mutation.SetAgentKeys(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PlaybookCreate) SetVersion(v int) *PlaybookCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *PlaybookCreate) SetNillableVersion(v *int) *PlaybookCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PlaybookCreate) SetCreatedBy(v string) *PlaybookCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *PlaybookCreate) SetNillableCreatedBy(v *string) *PlaybookCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlaybookCreate) SetCreatedAt(v time.Time) *PlaybookCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlaybookCreate) SetNillableCreatedAt(v *time.Time) *PlaybookCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlaybookCreate) SetUpdatedAt(v time.Time) *PlaybookCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlaybookCreate) SetNillableUpdatedAt(v *time.Time) *PlaybookCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PlaybookCreate) SetDeletedAt(v time.Time) *PlaybookCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PlaybookCreate) SetNillableDeletedAt(v *time.Time) *PlaybookCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlaybookCreate) SetID(v string) *PlaybookCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGraphID sets the "graph" edge to the DependencyGraph entity by ID.
func (_c *PlaybookCreate) SetGraphID(id string) *PlaybookCreate {
	_c.mutation.SetGraphID(id)
	return _c
}

// SetNillableGraphID sets the "graph" edge to the DependencyGraph entity by ID if the given value is not nil.
func (_c *PlaybookCreate) SetNillableGraphID(id *string) *PlaybookCreate {
	if id != nil {
		_c = _c.SetGraphID(*id)
	}
	return _c
}

// SetGraph sets the "graph" edge to the DependencyGraph entity.
func (_c *PlaybookCreate) SetGraph(v *DependencyGraph) *PlaybookCreate {
	return _c.SetGraphID(v.ID)
}

// Mutation returns the PlaybookMutation object of the builder.
func (_c *PlaybookCreate) Mutation() *PlaybookMutation {
	return _c.mutation
}

// Save creates the Playbook in the database.
func (_c *PlaybookCreate) Save(ctx context.Context) (*Playbook, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlaybookCreate) SaveX(ctx context.Context) *Playbook {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybookCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybookCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlaybookCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := playbook.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := playbook.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := playbook.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlaybookCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Playbook.tenant_id"`)}
	}
	if _, ok := _c.mutation.DomainID(); !ok {
		return &ValidationError{Name: "domain_id", err: errors.New(`ent: missing required field "Playbook.domain_id"`)}
	}
	if _, ok := _c.mutation.Class(); !ok {
		return &ValidationError{Name: "class", err: errors.New(`ent: missing required field "Playbook.class"`)}
	}
	if v, ok := _c.mutation.Class(); ok {
		if err := playbook.ClassValidator(v); err != nil {
			return &ValidationError{Name: "class", err: fmt.Errorf(`ent: validator failed for field "Playbook.class": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentKeys(); !ok {
		return &ValidationError{Name: "agent_keys", err: errors.New(`ent: missing required field "Playbook.agent_keys"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Playbook.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Playbook.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Playbook.updated_at"`)}
	}
	return nil
}

func (_c *PlaybookCreate) sqlSave(ctx context.Context) (*Playbook, error) {
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
			return nil, fmt.Errorf("unexpected Playbook.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlaybookCreate) createSpec() (*Playbook, *sqlgraph.CreateSpec) {
	var (
		_node = &Playbook{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playbook.Table, sqlgraph.NewFieldSpec(playbook.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(playbook.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.DomainID(); ok {
		_spec.SetField(playbook.FieldDomainID, field.TypeString, value)
		_node.DomainID = value
	}
	if value, ok := _c.mutation.Class(); ok {
		_spec.SetField(playbook.FieldClass, field.TypeEnum, value)
		_node.Class = value
	}
	if value, ok := _c.mutation.AgentKeys(); ok {
		_spec.SetField(playbook.FieldAgentKeys, field.TypeJSON, value)
		_node.AgentKeys = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(playbook.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(playbook.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(playbook.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(playbook.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(playbook.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.GraphIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   playbook.GraphTable,
			Columns: []string{playbook.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dependencygraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Playbook.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlaybookUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlaybookCreate) OnConflict(opts ...sql.ConflictOption) *PlaybookUpsertOne {
	_c.conflict = opts
	return &PlaybookUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Playbook.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlaybookCreate) OnConflictColumns(columns ...string) *PlaybookUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlaybookUpsertOne{
		create: _c,
	}
}

type (
	// PlaybookUpsertOne is the builder for "upsert"-ing
	//  one Playbook node.
	PlaybookUpsertOne struct {
		create *PlaybookCreate
	}

	// PlaybookUpsert is the "OnConflict" setter.
	PlaybookUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentKeys sets the "agent_keys" field.
func (u *PlaybookUpsert) SetAgentKeys(v []string) *PlaybookUpsert {
	u.Set(playbook.FieldAgentKeys, v)
	return u
}

// UpdateAgentKeys sets the "agent_keys" field to the value that was provided on create.
func (u *PlaybookUpsert) UpdateAgentKeys() *PlaybookUpsert {
	u.SetExcluded(playbook.FieldAgentKeys)
	return u
}

// SetVersion sets the "version" field.
func (u *PlaybookUpsert) SetVersion(v int) *PlaybookUpsert {
	u.Set(playbook.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PlaybookUpsert) UpdateVersion() *PlaybookUpsert {
	u.SetExcluded(playbook.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *PlaybookUpsert) AddVersion(v int) *PlaybookUpsert {
	u.Add(playbook.FieldVersion, v)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *PlaybookUpsert) SetCreatedBy(v string) *PlaybookUpsert {
	u.Set(playbook.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlaybookUpsert) UpdateCreatedBy() *PlaybookUpsert {
	u.SetExcluded(playbook.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlaybookUpsert) ClearCreatedBy() *PlaybookUpsert {
	u.SetNull(playbook.FieldCreatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlaybookUpsert) SetUpdatedAt(v time.Time) *PlaybookUpsert {
	u.Set(playbook.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlaybookUpsert) UpdateUpdatedAt() *PlaybookUpsert {
	u.SetExcluded(playbook.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PlaybookUpsert) SetDeletedAt(v time.Time) *PlaybookUpsert {
	u.Set(playbook.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PlaybookUpsert) UpdateDeletedAt() *PlaybookUpsert {
	u.SetExcluded(playbook.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PlaybookUpsert) ClearDeletedAt() *PlaybookUpsert {
	u.SetNull(playbook.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Playbook.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(playbook.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlaybookUpsertOne) UpdateNewValues() *PlaybookUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(playbook.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(playbook.FieldTenantID)
		}
		if _, exists := u.create.mutation.DomainID(); exists {
			s.SetIgnore(playbook.FieldDomainID)
		}
		if _, exists := u.create.mutation.Class(); exists {
			s.SetIgnore(playbook.FieldClass)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(playbook.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Playbook.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlaybookUpsertOne) Ignore() *PlaybookUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlaybookUpsertOne) DoNothing() *PlaybookUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlaybookCreate.OnConflict
// documentation for more info.
func (u *PlaybookUpsertOne) Update(set func(*PlaybookUpsert)) *PlaybookUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlaybookUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentKeys sets the "agent_keys" field.
func (u *PlaybookUpsertOne) SetAgentKeys(v []string) *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetAgentKeys(v)
	})
}

// UpdateAgentKeys sets the "agent_keys" field to the value that was provided on create.
func (u *PlaybookUpsertOne) UpdateAgentKeys() *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateAgentKeys()
	})
}

// SetVersion sets the "version" field.
func (u *PlaybookUpsertOne) SetVersion(v int) *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PlaybookUpsertOne) AddVersion(v int) *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PlaybookUpsertOne) UpdateVersion() *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateVersion()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PlaybookUpsertOne) SetCreatedBy(v string) *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlaybookUpsertOne) UpdateCreatedBy() *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlaybookUpsertOne) ClearCreatedBy() *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlaybookUpsertOne) SetUpdatedAt(v time.Time) *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlaybookUpsertOne) UpdateUpdatedAt() *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PlaybookUpsertOne) SetDeletedAt(v time.Time) *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PlaybookUpsertOne) UpdateDeletedAt() *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PlaybookUpsertOne) ClearDeletedAt() *PlaybookUpsertOne {
	return u.Update(func(s *PlaybookUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *PlaybookUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlaybookCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlaybookUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlaybookUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlaybookUpsertOne.ID is not supported by MySQL driver. Use PlaybookUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlaybookUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlaybookCreateBulk is the builder for creating many Playbook entities in bulk.
type PlaybookCreateBulk struct {
	config
	err      error
	builders []*PlaybookCreate
	conflict []sql.ConflictOption
}

// Save creates the Playbook entities in the database.
func (_c *PlaybookCreateBulk) Save(ctx context.Context) ([]*Playbook, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Playbook, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlaybookMutation)
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
func (_c *PlaybookCreateBulk) SaveX(ctx context.Context) []*Playbook {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybookCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybookCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Playbook.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlaybookUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlaybookCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlaybookUpsertBulk {
	_c.conflict = opts
	return &PlaybookUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Playbook.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlaybookCreateBulk) OnConflictColumns(columns ...string) *PlaybookUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlaybookUpsertBulk{
		create: _c,
	}
}

// PlaybookUpsertBulk is the builder for "upsert"-ing
// a bulk of Playbook nodes.
type PlaybookUpsertBulk struct {
	create *PlaybookCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Playbook.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(playbook.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlaybookUpsertBulk) UpdateNewValues() *PlaybookUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(playbook.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(playbook.FieldTenantID)
			}
			if _, exists := b.mutation.DomainID(); exists {
				s.SetIgnore(playbook.FieldDomainID)
			}
			if _, exists := b.mutation.Class(); exists {
				s.SetIgnore(playbook.FieldClass)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(playbook.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Playbook.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlaybookUpsertBulk) Ignore() *PlaybookUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlaybookUpsertBulk) DoNothing() *PlaybookUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlaybookCreateBulk.OnConflict
// documentation for more info.
func (u *PlaybookUpsertBulk) Update(set func(*PlaybookUpsert)) *PlaybookUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlaybookUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentKeys sets the "agent_keys" field.
func (u *PlaybookUpsertBulk) SetAgentKeys(v []string) *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetAgentKeys(v)
	})
}

// UpdateAgentKeys sets the "agent_keys" field to the value that was provided on create.
func (u *PlaybookUpsertBulk) UpdateAgentKeys() *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateAgentKeys()
	})
}

// SetVersion sets the "version" field.
func (u *PlaybookUpsertBulk) SetVersion(v int) *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *PlaybookUpsertBulk) AddVersion(v int) *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *PlaybookUpsertBulk) UpdateVersion() *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateVersion()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PlaybookUpsertBulk) SetCreatedBy(v string) *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlaybookUpsertBulk) UpdateCreatedBy() *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlaybookUpsertBulk) ClearCreatedBy() *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlaybookUpsertBulk) SetUpdatedAt(v time.Time) *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlaybookUpsertBulk) UpdateUpdatedAt() *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PlaybookUpsertBulk) SetDeletedAt(v time.Time) *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PlaybookUpsertBulk) UpdateDeletedAt() *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PlaybookUpsertBulk) ClearDeletedAt() *PlaybookUpsertBulk {
	return u.Update(func(s *PlaybookUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *PlaybookUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlaybookCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlaybookCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlaybookUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
