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
	"github.com/siftstack/sift/ent/domaintemplate"
	"github.com/siftstack/sift/pkg/models"
)

// DomainTemplateCreate is the builder for creating a DomainTemplate entity.
type DomainTemplateCreate struct {
	config
	mutation *DomainTemplateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *DomainTemplateCreate) SetName(v string) *DomainTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *DomainTemplateCreate) SetTenantID(v string) *DomainTemplateCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_c *DomainTemplateCreate) SetNillableTenantID(v *string) *DomainTemplateCreate {
	if v != nil {
		_c.SetTenantID(*v)
	}
	return _c
}

// SetSpec sets the "spec" field.
func (_c *DomainTemplateCreate) SetSpec(v *models.TemplateSpec) *DomainTemplateCreate {
	_c.mutation.SetSpec(v)
	return _c
}

// SetIsBuiltin sets the "is_builtin" field.
func (_c *DomainTemplateCreate) SetIsBuiltin(v bool) *DomainTemplateCreate {
	_c.mutation.SetIsBuiltin(v)
	return _c
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_c *DomainTemplateCreate) SetNillableIsBuiltin(v *bool) *DomainTemplateCreate {
	if v != nil {
		_c.SetIsBuiltin(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *DomainTemplateCreate) SetCreatedBy(v string) *DomainTemplateCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *DomainTemplateCreate) SetNillableCreatedBy(v *string) *DomainTemplateCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DomainTemplateCreate) SetCreatedAt(v time.Time) *DomainTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DomainTemplateCreate) SetNillableCreatedAt(v *time.Time) *DomainTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DomainTemplateCreate) SetID(v string) *DomainTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DomainTemplateMutation object of the builder.
func (_c *DomainTemplateCreate) Mutation() *DomainTemplateMutation {
	return _c.mutation
}

// Save creates the DomainTemplate in the database.
func (_c *DomainTemplateCreate) Save(ctx context.Context) (*DomainTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DomainTemplateCreate) SaveX(ctx context.Context) *DomainTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DomainTemplateCreate) defaults() {
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		v := domaintemplate.DefaultIsBuiltin
		_c.mutation.SetIsBuiltin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := domaintemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DomainTemplateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DomainTemplate.name"`)}
	}
	if _, ok := _c.mutation.Spec(); !ok {
		return &ValidationError{Name: "spec", err: errors.New(`ent: missing required field "DomainTemplate.spec"`)}
	}
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		return &ValidationError{Name: "is_builtin", err: errors.New(`ent: missing required field "DomainTemplate.is_builtin"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DomainTemplate.created_at"`)}
	}
	return nil
}

func (_c *DomainTemplateCreate) sqlSave(ctx context.Context) (*DomainTemplate, error) {
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
			return nil, fmt.Errorf("unexpected DomainTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DomainTemplateCreate) createSpec() (*DomainTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &DomainTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(domaintemplate.Table, sqlgraph.NewFieldSpec(domaintemplate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(domaintemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(domaintemplate.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Spec(); ok {
		_spec.SetField(domaintemplate.FieldSpec, field.TypeJSON, value)
		_node.Spec = value
	}
	if value, ok := _c.mutation.IsBuiltin(); ok {
		_spec.SetField(domaintemplate.FieldIsBuiltin, field.TypeBool, value)
		_node.IsBuiltin = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(domaintemplate.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(domaintemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DomainTemplate.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DomainTemplateUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *DomainTemplateCreate) OnConflict(opts ...sql.ConflictOption) *DomainTemplateUpsertOne {
	_c.conflict = opts
	return &DomainTemplateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DomainTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DomainTemplateCreate) OnConflictColumns(columns ...string) *DomainTemplateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DomainTemplateUpsertOne{
		create: _c,
	}
}

type (
	// DomainTemplateUpsertOne is the builder for "upsert"-ing
	//  one DomainTemplate node.
	DomainTemplateUpsertOne struct {
		create *DomainTemplateCreate
	}

	// DomainTemplateUpsert is the "OnConflict" setter.
	DomainTemplateUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DomainTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(domaintemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DomainTemplateUpsertOne) UpdateNewValues() *DomainTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(domaintemplate.FieldID)
		}
		if _, exists := u.create.mutation.Name(); exists {
			s.SetIgnore(domaintemplate.FieldName)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(domaintemplate.FieldTenantID)
		}
		if _, exists := u.create.mutation.Spec(); exists {
			s.SetIgnore(domaintemplate.FieldSpec)
		}
		if _, exists := u.create.mutation.IsBuiltin(); exists {
			s.SetIgnore(domaintemplate.FieldIsBuiltin)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(domaintemplate.FieldCreatedBy)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(domaintemplate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DomainTemplate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DomainTemplateUpsertOne) Ignore() *DomainTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DomainTemplateUpsertOne) DoNothing() *DomainTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DomainTemplateCreate.OnConflict
// documentation for more info.
func (u *DomainTemplateUpsertOne) Update(set func(*DomainTemplateUpsert)) *DomainTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DomainTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *DomainTemplateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DomainTemplateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DomainTemplateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DomainTemplateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DomainTemplateUpsertOne.ID is not supported by MySQL driver. Use DomainTemplateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DomainTemplateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DomainTemplateCreateBulk is the builder for creating many DomainTemplate entities in bulk.
type DomainTemplateCreateBulk struct {
	config
	err      error
	builders []*DomainTemplateCreate
	conflict []sql.ConflictOption
}

// Save creates the DomainTemplate entities in the database.
func (_c *DomainTemplateCreateBulk) Save(ctx context.Context) ([]*DomainTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DomainTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DomainTemplateMutation)
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
func (_c *DomainTemplateCreateBulk) SaveX(ctx context.Context) []*DomainTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DomainTemplate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DomainTemplateUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *DomainTemplateCreateBulk) OnConflict(opts ...sql.ConflictOption) *DomainTemplateUpsertBulk {
	_c.conflict = opts
	return &DomainTemplateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DomainTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DomainTemplateCreateBulk) OnConflictColumns(columns ...string) *DomainTemplateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DomainTemplateUpsertBulk{
		create: _c,
	}
}

// DomainTemplateUpsertBulk is the builder for "upsert"-ing
// a bulk of DomainTemplate nodes.
type DomainTemplateUpsertBulk struct {
	create *DomainTemplateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DomainTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(domaintemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DomainTemplateUpsertBulk) UpdateNewValues() *DomainTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(domaintemplate.FieldID)
			}
			if _, exists := b.mutation.Name(); exists {
				s.SetIgnore(domaintemplate.FieldName)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(domaintemplate.FieldTenantID)
			}
			if _, exists := b.mutation.Spec(); exists {
				s.SetIgnore(domaintemplate.FieldSpec)
			}
			if _, exists := b.mutation.IsBuiltin(); exists {
				s.SetIgnore(domaintemplate.FieldIsBuiltin)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(domaintemplate.FieldCreatedBy)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(domaintemplate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DomainTemplate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DomainTemplateUpsertBulk) Ignore() *DomainTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DomainTemplateUpsertBulk) DoNothing() *DomainTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DomainTemplateCreateBulk.OnConflict
// documentation for more info.
func (u *DomainTemplateUpsertBulk) Update(set func(*DomainTemplateUpsert)) *DomainTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DomainTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *DomainTemplateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DomainTemplateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DomainTemplateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DomainTemplateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
