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
	"github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/ent/resultartifact"
	"github.com/siftstack/sift/pkg/models"
)

// ResultArtifactCreate is the builder for creating a ResultArtifact entity.
type ResultArtifactCreate struct {
	config
	mutation *ResultArtifactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *ResultArtifactCreate) SetJobID(v string) *ResultArtifactCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *ResultArtifactCreate) SetTenantID(v string) *ResultArtifactCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetClass sets the "class" field.
func (_c *ResultArtifactCreate) SetClass(v resultartifact.Class) *ResultArtifactCreate {
	_c.mutation.SetClass(v)
	return _c
}

// SetFields sets the "fields" field.
func (_c *ResultArtifactCreate) SetFields(v map[string]interface{}) *ResultArtifactCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetBullets sets the "bullets" field.
func (_c *ResultArtifactCreate) SetBullets(v []models.Bullet) *ResultArtifactCreate {
	_c.mutation.SetBullets(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ResultArtifactCreate) SetSummary(v string) *ResultArtifactCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ResultArtifactCreate) SetNillableSummary(v *string) *ResultArtifactCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetVisualization sets the "visualization" field.
func (_c *ResultArtifactCreate) SetVisualization(v *models.VisualizationSpec) *ResultArtifactCreate {
	_c.mutation.SetVisualization(v)
	return _c
}

// SetAgentStatuses sets the "agent_statuses" field.
func (_c *ResultArtifactCreate) SetAgentStatuses(v map[string]models.AgentStatus) *ResultArtifactCreate {
	_c.mutation.SetAgentStatuses(v)
	return _c
}

// SetInputRefs sets the "input_refs" field.
func (_c *ResultArtifactCreate) SetInputRefs(v []string) *ResultArtifactCreate {
	_c.mutation.SetInputRefs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResultArtifactCreate) SetCreatedAt(v time.Time) *ResultArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResultArtifactCreate) SetNillableCreatedAt(v *time.Time) *ResultArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResultArtifactCreate) SetID(v string) *ResultArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *ResultArtifactCreate) SetJob(v *Job) *ResultArtifactCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ResultArtifactMutation object of the builder.
func (_c *ResultArtifactCreate) Mutation() *ResultArtifactMutation {
	return _c.mutation
}

// Save creates the ResultArtifact in the database.
func (_c *ResultArtifactCreate) Save(ctx context.Context) (*ResultArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultArtifactCreate) SaveX(ctx context.Context) *ResultArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultArtifactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resultartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultArtifactCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ResultArtifact.job_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ResultArtifact.tenant_id"`)}
	}
	if _, ok := _c.mutation.Class(); !ok {
		return &ValidationError{Name: "class", err: errors.New(`ent: missing required field "ResultArtifact.class"`)}
	}
	if v, ok := _c.mutation.Class(); ok {
		if err := resultartifact.ClassValidator(v); err != nil {
			return &ValidationError{Name: "class", err: fmt.Errorf(`ent: validator failed for field "ResultArtifact.class": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentStatuses(); !ok {
		return &ValidationError{Name: "agent_statuses", err: errors.New(`ent: missing required field "ResultArtifact.agent_statuses"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResultArtifact.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ResultArtifact.job"`)}
	}
	return nil
}

func (_c *ResultArtifactCreate) sqlSave(ctx context.Context) (*ResultArtifact, error) {
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
			return nil, fmt.Errorf("unexpected ResultArtifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultArtifactCreate) createSpec() (*ResultArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &ResultArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resultartifact.Table, sqlgraph.NewFieldSpec(resultartifact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(resultartifact.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Class(); ok {
		_spec.SetField(resultartifact.FieldClass, field.TypeEnum, value)
		_node.Class = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(resultartifact.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.Bullets(); ok {
		_spec.SetField(resultartifact.FieldBullets, field.TypeJSON, value)
		_node.Bullets = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(resultartifact.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Visualization(); ok {
		_spec.SetField(resultartifact.FieldVisualization, field.TypeJSON, value)
		_node.Visualization = value
	}
	if value, ok := _c.mutation.AgentStatuses(); ok {
		_spec.SetField(resultartifact.FieldAgentStatuses, field.TypeJSON, value)
		_node.AgentStatuses = value
	}
	if value, ok := _c.mutation.InputRefs(); ok {
		_spec.SetField(resultartifact.FieldInputRefs, field.TypeJSON, value)
		_node.InputRefs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resultartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   resultartifact.JobTable,
			Columns: []string{resultartifact.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResultArtifact.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResultArtifactUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *ResultArtifactCreate) OnConflict(opts ...sql.ConflictOption) *ResultArtifactUpsertOne {
	_c.conflict = opts
	return &ResultArtifactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResultArtifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResultArtifactCreate) OnConflictColumns(columns ...string) *ResultArtifactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResultArtifactUpsertOne{
		create: _c,
	}
}

type (
	// ResultArtifactUpsertOne is the builder for "upsert"-ing
	//  one ResultArtifact node.
	ResultArtifactUpsertOne struct {
		create *ResultArtifactCreate
	}

	// ResultArtifactUpsert is the "OnConflict" setter.
	ResultArtifactUpsert struct {
		*sql.UpdateSet
	}
)

// SetFields sets the "fields" field.
func (u *ResultArtifactUpsert) SetFields(v map[string]interface{}) *ResultArtifactUpsert {
	u.Set(resultartifact.FieldFields, v)
	return u
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *ResultArtifactUpsert) UpdateFields() *ResultArtifactUpsert {
	u.SetExcluded(resultartifact.FieldFields)
	return u
}

// ClearFields clears the value of the "fields" field.
func (u *ResultArtifactUpsert) ClearFields() *ResultArtifactUpsert {
	u.SetNull(resultartifact.FieldFields)
	return u
}

// SetBullets sets the "bullets" field.
func (u *ResultArtifactUpsert) SetBullets(v []models.Bullet) *ResultArtifactUpsert {
	u.Set(resultartifact.FieldBullets, v)
	return u
}

// UpdateBullets sets the "bullets" field to the value that was provided on create.
func (u *ResultArtifactUpsert) UpdateBullets() *ResultArtifactUpsert {
	u.SetExcluded(resultartifact.FieldBullets)
	return u
}

// ClearBullets clears the value of the "bullets" field.
func (u *ResultArtifactUpsert) ClearBullets() *ResultArtifactUpsert {
	u.SetNull(resultartifact.FieldBullets)
	return u
}

// SetSummary sets the "summary" field.
func (u *ResultArtifactUpsert) SetSummary(v string) *ResultArtifactUpsert {
	u.Set(resultartifact.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ResultArtifactUpsert) UpdateSummary() *ResultArtifactUpsert {
	u.SetExcluded(resultartifact.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *ResultArtifactUpsert) ClearSummary() *ResultArtifactUpsert {
	u.SetNull(resultartifact.FieldSummary)
	return u
}

// SetVisualization sets the "visualization" field.
func (u *ResultArtifactUpsert) SetVisualization(v *models.VisualizationSpec) *ResultArtifactUpsert {
	u.Set(resultartifact.FieldVisualization, v)
	return u
}

// UpdateVisualization sets the "visualization" field to the value that was provided on create.
func (u *ResultArtifactUpsert) UpdateVisualization() *ResultArtifactUpsert {
	u.SetExcluded(resultartifact.FieldVisualization)
	return u
}

// ClearVisualization clears the value of the "visualization" field.
func (u *ResultArtifactUpsert) ClearVisualization() *ResultArtifactUpsert {
	u.SetNull(resultartifact.FieldVisualization)
	return u
}

// SetAgentStatuses sets the "agent_statuses" field.
func (u *ResultArtifactUpsert) SetAgentStatuses(v map[string]models.AgentStatus) *ResultArtifactUpsert {
	u.Set(resultartifact.FieldAgentStatuses, v)
	return u
}

// UpdateAgentStatuses sets the "agent_statuses" field to the value that was provided on create.
func (u *ResultArtifactUpsert) UpdateAgentStatuses() *ResultArtifactUpsert {
	u.SetExcluded(resultartifact.FieldAgentStatuses)
	return u
}

// SetInputRefs sets the "input_refs" field.
func (u *ResultArtifactUpsert) SetInputRefs(v []string) *ResultArtifactUpsert {
	u.Set(resultartifact.FieldInputRefs, v)
	return u
}

// UpdateInputRefs sets the "input_refs" field to the value that was provided on create.
func (u *ResultArtifactUpsert) UpdateInputRefs() *ResultArtifactUpsert {
	u.SetExcluded(resultartifact.FieldInputRefs)
	return u
}

// ClearInputRefs clears the value of the "input_refs" field.
func (u *ResultArtifactUpsert) ClearInputRefs() *ResultArtifactUpsert {
	u.SetNull(resultartifact.FieldInputRefs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ResultArtifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resultartifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResultArtifactUpsertOne) UpdateNewValues() *ResultArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(resultartifact.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(resultartifact.FieldJobID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(resultartifact.FieldTenantID)
		}
		if _, exists := u.create.mutation.Class(); exists {
			s.SetIgnore(resultartifact.FieldClass)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(resultartifact.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResultArtifact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResultArtifactUpsertOne) Ignore() *ResultArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResultArtifactUpsertOne) DoNothing() *ResultArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResultArtifactCreate.OnConflict
// documentation for more info.
func (u *ResultArtifactUpsertOne) Update(set func(*ResultArtifactUpsert)) *ResultArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResultArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetFields sets the "fields" field.
func (u *ResultArtifactUpsertOne) SetFields(v map[string]interface{}) *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *ResultArtifactUpsertOne) UpdateFields() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateFields()
	})
}

// ClearFields clears the value of the "fields" field.
func (u *ResultArtifactUpsertOne) ClearFields() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearFields()
	})
}

// SetBullets sets the "bullets" field.
func (u *ResultArtifactUpsertOne) SetBullets(v []models.Bullet) *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetBullets(v)
	})
}

// UpdateBullets sets the "bullets" field to the value that was provided on create.
func (u *ResultArtifactUpsertOne) UpdateBullets() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateBullets()
	})
}

// ClearBullets clears the value of the "bullets" field.
func (u *ResultArtifactUpsertOne) ClearBullets() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearBullets()
	})
}

// SetSummary sets the "summary" field.
func (u *ResultArtifactUpsertOne) SetSummary(v string) *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ResultArtifactUpsertOne) UpdateSummary() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ResultArtifactUpsertOne) ClearSummary() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearSummary()
	})
}

// SetVisualization sets the "visualization" field.
func (u *ResultArtifactUpsertOne) SetVisualization(v *models.VisualizationSpec) *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetVisualization(v)
	})
}

// UpdateVisualization sets the "visualization" field to the value that was provided on create.
func (u *ResultArtifactUpsertOne) UpdateVisualization() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateVisualization()
	})
}

// ClearVisualization clears the value of the "visualization" field.
func (u *ResultArtifactUpsertOne) ClearVisualization() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearVisualization()
	})
}

// SetAgentStatuses sets the "agent_statuses" field.
func (u *ResultArtifactUpsertOne) SetAgentStatuses(v map[string]models.AgentStatus) *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetAgentStatuses(v)
	})
}

// UpdateAgentStatuses sets the "agent_statuses" field to the value that was provided on create.
func (u *ResultArtifactUpsertOne) UpdateAgentStatuses() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateAgentStatuses()
	})
}

// SetInputRefs sets the "input_refs" field.
func (u *ResultArtifactUpsertOne) SetInputRefs(v []string) *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetInputRefs(v)
	})
}

// UpdateInputRefs sets the "input_refs" field to the value that was provided on create.
func (u *ResultArtifactUpsertOne) UpdateInputRefs() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateInputRefs()
	})
}

// ClearInputRefs clears the value of the "input_refs" field.
func (u *ResultArtifactUpsertOne) ClearInputRefs() *ResultArtifactUpsertOne {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearInputRefs()
	})
}

// Exec executes the query.
func (u *ResultArtifactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResultArtifactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResultArtifactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResultArtifactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ResultArtifactUpsertOne.ID is not supported by MySQL driver. Use ResultArtifactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResultArtifactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResultArtifactCreateBulk is the builder for creating many ResultArtifact entities in bulk.
type ResultArtifactCreateBulk struct {
	config
	err      error
	builders []*ResultArtifactCreate
	conflict []sql.ConflictOption
}

// Save creates the ResultArtifact entities in the database.
func (_c *ResultArtifactCreateBulk) Save(ctx context.Context) ([]*ResultArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResultArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultArtifactMutation)
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
func (_c *ResultArtifactCreateBulk) SaveX(ctx context.Context) []*ResultArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResultArtifact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResultArtifactUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *ResultArtifactCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResultArtifactUpsertBulk {
	_c.conflict = opts
	return &ResultArtifactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResultArtifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResultArtifactCreateBulk) OnConflictColumns(columns ...string) *ResultArtifactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResultArtifactUpsertBulk{
		create: _c,
	}
}

// ResultArtifactUpsertBulk is the builder for "upsert"-ing
// a bulk of ResultArtifact nodes.
type ResultArtifactUpsertBulk struct {
	create *ResultArtifactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ResultArtifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resultartifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResultArtifactUpsertBulk) UpdateNewValues() *ResultArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(resultartifact.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(resultartifact.FieldJobID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(resultartifact.FieldTenantID)
			}
			if _, exists := b.mutation.Class(); exists {
				s.SetIgnore(resultartifact.FieldClass)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(resultartifact.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResultArtifact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResultArtifactUpsertBulk) Ignore() *ResultArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResultArtifactUpsertBulk) DoNothing() *ResultArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResultArtifactCreateBulk.OnConflict
// documentation for more info.
func (u *ResultArtifactUpsertBulk) Update(set func(*ResultArtifactUpsert)) *ResultArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResultArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetFields sets the "fields" field.
func (u *ResultArtifactUpsertBulk) SetFields(v map[string]interface{}) *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *ResultArtifactUpsertBulk) UpdateFields() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateFields()
	})
}

// ClearFields clears the value of the "fields" field.
func (u *ResultArtifactUpsertBulk) ClearFields() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearFields()
	})
}

// SetBullets sets the "bullets" field.
func (u *ResultArtifactUpsertBulk) SetBullets(v []models.Bullet) *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetBullets(v)
	})
}

// UpdateBullets sets the "bullets" field to the value that was provided on create.
func (u *ResultArtifactUpsertBulk) UpdateBullets() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateBullets()
	})
}

// ClearBullets clears the value of the "bullets" field.
func (u *ResultArtifactUpsertBulk) ClearBullets() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearBullets()
	})
}

// SetSummary sets the "summary" field.
func (u *ResultArtifactUpsertBulk) SetSummary(v string) *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ResultArtifactUpsertBulk) UpdateSummary() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ResultArtifactUpsertBulk) ClearSummary() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearSummary()
	})
}

// SetVisualization sets the "visualization" field.
func (u *ResultArtifactUpsertBulk) SetVisualization(v *models.VisualizationSpec) *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetVisualization(v)
	})
}

// UpdateVisualization sets the "visualization" field to the value that was provided on create.
func (u *ResultArtifactUpsertBulk) UpdateVisualization() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateVisualization()
	})
}

// ClearVisualization clears the value of the "visualization" field.
func (u *ResultArtifactUpsertBulk) ClearVisualization() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearVisualization()
	})
}

// SetAgentStatuses sets the "agent_statuses" field.
func (u *ResultArtifactUpsertBulk) SetAgentStatuses(v map[string]models.AgentStatus) *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetAgentStatuses(v)
	})
}

// UpdateAgentStatuses sets the "agent_statuses" field to the value that was provided on create.
func (u *ResultArtifactUpsertBulk) UpdateAgentStatuses() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateAgentStatuses()
	})
}

// SetInputRefs sets the "input_refs" field.
func (u *ResultArtifactUpsertBulk) SetInputRefs(v []string) *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.SetInputRefs(v)
	})
}

// UpdateInputRefs sets the "input_refs" field to the value that was provided on create.
func (u *ResultArtifactUpsertBulk) UpdateInputRefs() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.UpdateInputRefs()
	})
}

// ClearInputRefs clears the value of the "input_refs" field.
func (u *ResultArtifactUpsertBulk) ClearInputRefs() *ResultArtifactUpsertBulk {
	return u.Update(func(s *ResultArtifactUpsert) {
		s.ClearInputRefs()
	})
}

// Exec executes the query.
func (u *ResultArtifactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResultArtifactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResultArtifactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResultArtifactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
