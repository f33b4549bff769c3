// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/siftstack/sift/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/siftstack/sift/ent/agentdefinition"
	"github.com/siftstack/sift/ent/agentinvocation"
	"github.com/siftstack/sift/ent/dependencygraph"
	"github.com/siftstack/sift/ent/domaintemplate"
	"github.com/siftstack/sift/ent/event"
	"github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/ent/playbook"
	"github.com/siftstack/sift/ent/resultartifact"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentDefinition is the client for interacting with the AgentDefinition builders.
	AgentDefinition *AgentDefinitionClient
	// AgentInvocation is the client for interacting with the AgentInvocation builders.
	AgentInvocation *AgentInvocationClient
	// DependencyGraph is the client for interacting with the DependencyGraph builders.
	DependencyGraph *DependencyGraphClient
	// DomainTemplate is the client for interacting with the DomainTemplate builders.
	DomainTemplate *DomainTemplateClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// Playbook is the client for interacting with the Playbook builders.
	Playbook *PlaybookClient
	// ResultArtifact is the client for interacting with the ResultArtifact builders.
	ResultArtifact *ResultArtifactClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentDefinition = NewAgentDefinitionClient(c.config)
	c.AgentInvocation = NewAgentInvocationClient(c.config)
	c.DependencyGraph = NewDependencyGraphClient(c.config)
	c.DomainTemplate = NewDomainTemplateClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Job = NewJobClient(c.config)
	c.Playbook = NewPlaybookClient(c.config)
	c.ResultArtifact = NewResultArtifactClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentDefinition: NewAgentDefinitionClient(cfg),
		AgentInvocation: NewAgentInvocationClient(cfg),
		DependencyGraph: NewDependencyGraphClient(cfg),
		DomainTemplate:  NewDomainTemplateClient(cfg),
		Event:           NewEventClient(cfg),
		Job:             NewJobClient(cfg),
		Playbook:        NewPlaybookClient(cfg),
		ResultArtifact:  NewResultArtifactClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentDefinition: NewAgentDefinitionClient(cfg),
		AgentInvocation: NewAgentInvocationClient(cfg),
		DependencyGraph: NewDependencyGraphClient(cfg),
		DomainTemplate:  NewDomainTemplateClient(cfg),
		Event:           NewEventClient(cfg),
		Job:             NewJobClient(cfg),
		Playbook:        NewPlaybookClient(cfg),
		ResultArtifact:  NewResultArtifactClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentDefinition.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentDefinition, c.AgentInvocation, c.DependencyGraph, c.DomainTemplate,
		c.Event, c.Job, c.Playbook, c.ResultArtifact,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentDefinition, c.AgentInvocation, c.DependencyGraph, c.DomainTemplate,
		c.Event, c.Job, c.Playbook, c.ResultArtifact,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentDefinitionMutation:
		return c.AgentDefinition.mutate(ctx, m)
	case *AgentInvocationMutation:
		return c.AgentInvocation.mutate(ctx, m)
	case *DependencyGraphMutation:
		return c.DependencyGraph.mutate(ctx, m)
	case *DomainTemplateMutation:
		return c.DomainTemplate.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *PlaybookMutation:
		return c.Playbook.mutate(ctx, m)
	case *ResultArtifactMutation:
		return c.ResultArtifact.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentDefinitionClient is a client for the AgentDefinition schema.
type AgentDefinitionClient struct {
	config
}

// NewAgentDefinitionClient returns a client for the AgentDefinition from the given config.
func NewAgentDefinitionClient(c config) *AgentDefinitionClient {
	return &AgentDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentdefinition.Hooks(f(g(h())))`.
func (c *AgentDefinitionClient) Use(hooks ...Hook) {
	c.hooks.AgentDefinition = append(c.hooks.AgentDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentdefinition.Intercept(f(g(h())))`.
func (c *AgentDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentDefinition = append(c.inters.AgentDefinition, interceptors...)
}

// Create returns a builder for creating a AgentDefinition entity.
func (c *AgentDefinitionClient) Create() *AgentDefinitionCreate {
	mutation := newAgentDefinitionMutation(c.config, OpCreate)
	return &AgentDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentDefinition entities.
func (c *AgentDefinitionClient) CreateBulk(builders ...*AgentDefinitionCreate) *AgentDefinitionCreateBulk {
	return &AgentDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentDefinitionClient) MapCreateBulk(slice any, setFunc func(*AgentDefinitionCreate, int)) *AgentDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentDefinitionCreateBulk{err: fmt.Errorf("calling to AgentDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentDefinition.
func (c *AgentDefinitionClient) Update() *AgentDefinitionUpdate {
	mutation := newAgentDefinitionMutation(c.config, OpUpdate)
	return &AgentDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentDefinitionClient) UpdateOne(_m *AgentDefinition) *AgentDefinitionUpdateOne {
	mutation := newAgentDefinitionMutation(c.config, OpUpdateOne, withAgentDefinition(_m))
	return &AgentDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentDefinitionClient) UpdateOneID(id string) *AgentDefinitionUpdateOne {
	mutation := newAgentDefinitionMutation(c.config, OpUpdateOne, withAgentDefinitionID(id))
	return &AgentDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentDefinition.
func (c *AgentDefinitionClient) Delete() *AgentDefinitionDelete {
	mutation := newAgentDefinitionMutation(c.config, OpDelete)
	return &AgentDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentDefinitionClient) DeleteOne(_m *AgentDefinition) *AgentDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentDefinitionClient) DeleteOneID(id string) *AgentDefinitionDeleteOne {
	builder := c.Delete().Where(agentdefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDefinitionDeleteOne{builder}
}

// Query returns a query builder for AgentDefinition.
func (c *AgentDefinitionClient) Query() *AgentDefinitionQuery {
	return &AgentDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentDefinition entity by its id.
func (c *AgentDefinitionClient) Get(ctx context.Context, id string) (*AgentDefinition, error) {
	return c.Query().Where(agentdefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentDefinitionClient) GetX(ctx context.Context, id string) *AgentDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentDefinitionClient) Hooks() []Hook {
	return c.hooks.AgentDefinition
}

// Interceptors returns the client interceptors.
func (c *AgentDefinitionClient) Interceptors() []Interceptor {
	return c.inters.AgentDefinition
}

func (c *AgentDefinitionClient) mutate(ctx context.Context, m *AgentDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentDefinition mutation op: %q", m.Op())
	}
}

// AgentInvocationClient is a client for the AgentInvocation schema.
type AgentInvocationClient struct {
	config
}

// NewAgentInvocationClient returns a client for the AgentInvocation from the given config.
func NewAgentInvocationClient(c config) *AgentInvocationClient {
	return &AgentInvocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentinvocation.Hooks(f(g(h())))`.
func (c *AgentInvocationClient) Use(hooks ...Hook) {
	c.hooks.AgentInvocation = append(c.hooks.AgentInvocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentinvocation.Intercept(f(g(h())))`.
func (c *AgentInvocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentInvocation = append(c.inters.AgentInvocation, interceptors...)
}

// Create returns a builder for creating a AgentInvocation entity.
func (c *AgentInvocationClient) Create() *AgentInvocationCreate {
	mutation := newAgentInvocationMutation(c.config, OpCreate)
	return &AgentInvocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentInvocation entities.
func (c *AgentInvocationClient) CreateBulk(builders ...*AgentInvocationCreate) *AgentInvocationCreateBulk {
	return &AgentInvocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentInvocationClient) MapCreateBulk(slice any, setFunc func(*AgentInvocationCreate, int)) *AgentInvocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentInvocationCreateBulk{err: fmt.Errorf("calling to AgentInvocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentInvocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentInvocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentInvocation.
func (c *AgentInvocationClient) Update() *AgentInvocationUpdate {
	mutation := newAgentInvocationMutation(c.config, OpUpdate)
	return &AgentInvocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentInvocationClient) UpdateOne(_m *AgentInvocation) *AgentInvocationUpdateOne {
	mutation := newAgentInvocationMutation(c.config, OpUpdateOne, withAgentInvocation(_m))
	return &AgentInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentInvocationClient) UpdateOneID(id string) *AgentInvocationUpdateOne {
	mutation := newAgentInvocationMutation(c.config, OpUpdateOne, withAgentInvocationID(id))
	return &AgentInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentInvocation.
func (c *AgentInvocationClient) Delete() *AgentInvocationDelete {
	mutation := newAgentInvocationMutation(c.config, OpDelete)
	return &AgentInvocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentInvocationClient) DeleteOne(_m *AgentInvocation) *AgentInvocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentInvocationClient) DeleteOneID(id string) *AgentInvocationDeleteOne {
	builder := c.Delete().Where(agentinvocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentInvocationDeleteOne{builder}
}

// Query returns a query builder for AgentInvocation.
func (c *AgentInvocationClient) Query() *AgentInvocationQuery {
	return &AgentInvocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentInvocation},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentInvocation entity by its id.
func (c *AgentInvocationClient) Get(ctx context.Context, id string) (*AgentInvocation, error) {
	return c.Query().Where(agentinvocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentInvocationClient) GetX(ctx context.Context, id string) *AgentInvocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a AgentInvocation.
func (c *AgentInvocationClient) QueryJob(_m *AgentInvocation) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentinvocation.Table, agentinvocation.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentinvocation.JobTable, agentinvocation.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentInvocationClient) Hooks() []Hook {
	return c.hooks.AgentInvocation
}

// Interceptors returns the client interceptors.
func (c *AgentInvocationClient) Interceptors() []Interceptor {
	return c.inters.AgentInvocation
}

func (c *AgentInvocationClient) mutate(ctx context.Context, m *AgentInvocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentInvocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentInvocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentInvocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentInvocation mutation op: %q", m.Op())
	}
}

// DependencyGraphClient is a client for the DependencyGraph schema.
type DependencyGraphClient struct {
	config
}

// NewDependencyGraphClient returns a client for the DependencyGraph from the given config.
func NewDependencyGraphClient(c config) *DependencyGraphClient {
	return &DependencyGraphClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dependencygraph.Hooks(f(g(h())))`.
func (c *DependencyGraphClient) Use(hooks ...Hook) {
	c.hooks.DependencyGraph = append(c.hooks.DependencyGraph, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dependencygraph.Intercept(f(g(h())))`.
func (c *DependencyGraphClient) Intercept(interceptors ...Interceptor) {
	c.inters.DependencyGraph = append(c.inters.DependencyGraph, interceptors...)
}

// Create returns a builder for creating a DependencyGraph entity.
func (c *DependencyGraphClient) Create() *DependencyGraphCreate {
	mutation := newDependencyGraphMutation(c.config, OpCreate)
	return &DependencyGraphCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DependencyGraph entities.
func (c *DependencyGraphClient) CreateBulk(builders ...*DependencyGraphCreate) *DependencyGraphCreateBulk {
	return &DependencyGraphCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DependencyGraphClient) MapCreateBulk(slice any, setFunc func(*DependencyGraphCreate, int)) *DependencyGraphCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DependencyGraphCreateBulk{err: fmt.Errorf("calling to DependencyGraphClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DependencyGraphCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DependencyGraphCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DependencyGraph.
func (c *DependencyGraphClient) Update() *DependencyGraphUpdate {
	mutation := newDependencyGraphMutation(c.config, OpUpdate)
	return &DependencyGraphUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DependencyGraphClient) UpdateOne(_m *DependencyGraph) *DependencyGraphUpdateOne {
	mutation := newDependencyGraphMutation(c.config, OpUpdateOne, withDependencyGraph(_m))
	return &DependencyGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DependencyGraphClient) UpdateOneID(id string) *DependencyGraphUpdateOne {
	mutation := newDependencyGraphMutation(c.config, OpUpdateOne, withDependencyGraphID(id))
	return &DependencyGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DependencyGraph.
func (c *DependencyGraphClient) Delete() *DependencyGraphDelete {
	mutation := newDependencyGraphMutation(c.config, OpDelete)
	return &DependencyGraphDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DependencyGraphClient) DeleteOne(_m *DependencyGraph) *DependencyGraphDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DependencyGraphClient) DeleteOneID(id string) *DependencyGraphDeleteOne {
	builder := c.Delete().Where(dependencygraph.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DependencyGraphDeleteOne{builder}
}

// Query returns a query builder for DependencyGraph.
func (c *DependencyGraphClient) Query() *DependencyGraphQuery {
	return &DependencyGraphQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDependencyGraph},
		inters: c.Interceptors(),
	}
}

// Get returns a DependencyGraph entity by its id.
func (c *DependencyGraphClient) Get(ctx context.Context, id string) (*DependencyGraph, error) {
	return c.Query().Where(dependencygraph.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DependencyGraphClient) GetX(ctx context.Context, id string) *DependencyGraph {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlaybook queries the playbook edge of a DependencyGraph.
func (c *DependencyGraphClient) QueryPlaybook(_m *DependencyGraph) *PlaybookQuery {
	query := (&PlaybookClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dependencygraph.Table, dependencygraph.FieldID, id),
			sqlgraph.To(playbook.Table, playbook.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, dependencygraph.PlaybookTable, dependencygraph.PlaybookColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DependencyGraphClient) Hooks() []Hook {
	return c.hooks.DependencyGraph
}

// Interceptors returns the client interceptors.
func (c *DependencyGraphClient) Interceptors() []Interceptor {
	return c.inters.DependencyGraph
}

func (c *DependencyGraphClient) mutate(ctx context.Context, m *DependencyGraphMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DependencyGraphCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DependencyGraphUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DependencyGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DependencyGraphDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DependencyGraph mutation op: %q", m.Op())
	}
}

// DomainTemplateClient is a client for the DomainTemplate schema.
type DomainTemplateClient struct {
	config
}

// NewDomainTemplateClient returns a client for the DomainTemplate from the given config.
func NewDomainTemplateClient(c config) *DomainTemplateClient {
	return &DomainTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `domaintemplate.Hooks(f(g(h())))`.
func (c *DomainTemplateClient) Use(hooks ...Hook) {
	c.hooks.DomainTemplate = append(c.hooks.DomainTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `domaintemplate.Intercept(f(g(h())))`.
func (c *DomainTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.DomainTemplate = append(c.inters.DomainTemplate, interceptors...)
}

// Create returns a builder for creating a DomainTemplate entity.
func (c *DomainTemplateClient) Create() *DomainTemplateCreate {
	mutation := newDomainTemplateMutation(c.config, OpCreate)
	return &DomainTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DomainTemplate entities.
func (c *DomainTemplateClient) CreateBulk(builders ...*DomainTemplateCreate) *DomainTemplateCreateBulk {
	return &DomainTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DomainTemplateClient) MapCreateBulk(slice any, setFunc func(*DomainTemplateCreate, int)) *DomainTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DomainTemplateCreateBulk{err: fmt.Errorf("calling to DomainTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DomainTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DomainTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DomainTemplate.
func (c *DomainTemplateClient) Update() *DomainTemplateUpdate {
	mutation := newDomainTemplateMutation(c.config, OpUpdate)
	return &DomainTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DomainTemplateClient) UpdateOne(_m *DomainTemplate) *DomainTemplateUpdateOne {
	mutation := newDomainTemplateMutation(c.config, OpUpdateOne, withDomainTemplate(_m))
	return &DomainTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DomainTemplateClient) UpdateOneID(id string) *DomainTemplateUpdateOne {
	mutation := newDomainTemplateMutation(c.config, OpUpdateOne, withDomainTemplateID(id))
	return &DomainTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DomainTemplate.
func (c *DomainTemplateClient) Delete() *DomainTemplateDelete {
	mutation := newDomainTemplateMutation(c.config, OpDelete)
	return &DomainTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DomainTemplateClient) DeleteOne(_m *DomainTemplate) *DomainTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DomainTemplateClient) DeleteOneID(id string) *DomainTemplateDeleteOne {
	builder := c.Delete().Where(domaintemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DomainTemplateDeleteOne{builder}
}

// Query returns a query builder for DomainTemplate.
func (c *DomainTemplateClient) Query() *DomainTemplateQuery {
	return &DomainTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDomainTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a DomainTemplate entity by its id.
func (c *DomainTemplateClient) Get(ctx context.Context, id string) (*DomainTemplate, error) {
	return c.Query().Where(domaintemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DomainTemplateClient) GetX(ctx context.Context, id string) *DomainTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DomainTemplateClient) Hooks() []Hook {
	return c.hooks.DomainTemplate
}

// Interceptors returns the client interceptors.
func (c *DomainTemplateClient) Interceptors() []Interceptor {
	return c.inters.DomainTemplate
}

func (c *DomainTemplateClient) mutate(ctx context.Context, m *DomainTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DomainTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DomainTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DomainTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DomainTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DomainTemplate mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int64) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int64) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int64) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int64) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a Event.
func (c *EventClient) QueryJob(_m *Event) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.JobTable, event.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvocations queries the invocations edge of a Job.
func (c *JobClient) QueryInvocations(_m *Job) *AgentInvocationQuery {
	query := (&AgentInvocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(agentinvocation.Table, agentinvocation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.InvocationsTable, job.InvocationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArtifact queries the artifact edge of a Job.
func (c *JobClient) QueryArtifact(_m *Job) *ResultArtifactQuery {
	query := (&ResultArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(resultartifact.Table, resultartifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, job.ArtifactTable, job.ArtifactColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Job.
func (c *JobClient) QueryEvents(_m *Job) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.EventsTable, job.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// PlaybookClient is a client for the Playbook schema.
type PlaybookClient struct {
	config
}

// NewPlaybookClient returns a client for the Playbook from the given config.
func NewPlaybookClient(c config) *PlaybookClient {
	return &PlaybookClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playbook.Hooks(f(g(h())))`.
func (c *PlaybookClient) Use(hooks ...Hook) {
	c.hooks.Playbook = append(c.hooks.Playbook, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playbook.Intercept(f(g(h())))`.
func (c *PlaybookClient) Intercept(interceptors ...Interceptor) {
	c.inters.Playbook = append(c.inters.Playbook, interceptors...)
}

// Create returns a builder for creating a Playbook entity.
func (c *PlaybookClient) Create() *PlaybookCreate {
	mutation := newPlaybookMutation(c.config, OpCreate)
	return &PlaybookCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Playbook entities.
func (c *PlaybookClient) CreateBulk(builders ...*PlaybookCreate) *PlaybookCreateBulk {
	return &PlaybookCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlaybookClient) MapCreateBulk(slice any, setFunc func(*PlaybookCreate, int)) *PlaybookCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlaybookCreateBulk{err: fmt.Errorf("calling to PlaybookClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlaybookCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlaybookCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Playbook.
func (c *PlaybookClient) Update() *PlaybookUpdate {
	mutation := newPlaybookMutation(c.config, OpUpdate)
	return &PlaybookUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlaybookClient) UpdateOne(_m *Playbook) *PlaybookUpdateOne {
	mutation := newPlaybookMutation(c.config, OpUpdateOne, withPlaybook(_m))
	return &PlaybookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlaybookClient) UpdateOneID(id string) *PlaybookUpdateOne {
	mutation := newPlaybookMutation(c.config, OpUpdateOne, withPlaybookID(id))
	return &PlaybookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Playbook.
func (c *PlaybookClient) Delete() *PlaybookDelete {
	mutation := newPlaybookMutation(c.config, OpDelete)
	return &PlaybookDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlaybookClient) DeleteOne(_m *Playbook) *PlaybookDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlaybookClient) DeleteOneID(id string) *PlaybookDeleteOne {
	builder := c.Delete().Where(playbook.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlaybookDeleteOne{builder}
}

// Query returns a query builder for Playbook.
func (c *PlaybookClient) Query() *PlaybookQuery {
	return &PlaybookQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlaybook},
		inters: c.Interceptors(),
	}
}

// Get returns a Playbook entity by its id.
func (c *PlaybookClient) Get(ctx context.Context, id string) (*Playbook, error) {
	return c.Query().Where(playbook.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlaybookClient) GetX(ctx context.Context, id string) *Playbook {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGraph queries the graph edge of a Playbook.
func (c *PlaybookClient) QueryGraph(_m *Playbook) *DependencyGraphQuery {
	query := (&DependencyGraphClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(playbook.Table, playbook.FieldID, id),
			sqlgraph.To(dependencygraph.Table, dependencygraph.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, playbook.GraphTable, playbook.GraphColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlaybookClient) Hooks() []Hook {
	return c.hooks.Playbook
}

// Interceptors returns the client interceptors.
func (c *PlaybookClient) Interceptors() []Interceptor {
	return c.inters.Playbook
}

func (c *PlaybookClient) mutate(ctx context.Context, m *PlaybookMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlaybookCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlaybookUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlaybookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlaybookDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Playbook mutation op: %q", m.Op())
	}
}

// ResultArtifactClient is a client for the ResultArtifact schema.
type ResultArtifactClient struct {
	config
}

// NewResultArtifactClient returns a client for the ResultArtifact from the given config.
func NewResultArtifactClient(c config) *ResultArtifactClient {
	return &ResultArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resultartifact.Hooks(f(g(h())))`.
func (c *ResultArtifactClient) Use(hooks ...Hook) {
	c.hooks.ResultArtifact = append(c.hooks.ResultArtifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resultartifact.Intercept(f(g(h())))`.
func (c *ResultArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResultArtifact = append(c.inters.ResultArtifact, interceptors...)
}

// Create returns a builder for creating a ResultArtifact entity.
func (c *ResultArtifactClient) Create() *ResultArtifactCreate {
	mutation := newResultArtifactMutation(c.config, OpCreate)
	return &ResultArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResultArtifact entities.
func (c *ResultArtifactClient) CreateBulk(builders ...*ResultArtifactCreate) *ResultArtifactCreateBulk {
	return &ResultArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResultArtifactClient) MapCreateBulk(slice any, setFunc func(*ResultArtifactCreate, int)) *ResultArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResultArtifactCreateBulk{err: fmt.Errorf("calling to ResultArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResultArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResultArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResultArtifact.
func (c *ResultArtifactClient) Update() *ResultArtifactUpdate {
	mutation := newResultArtifactMutation(c.config, OpUpdate)
	return &ResultArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResultArtifactClient) UpdateOne(_m *ResultArtifact) *ResultArtifactUpdateOne {
	mutation := newResultArtifactMutation(c.config, OpUpdateOne, withResultArtifact(_m))
	return &ResultArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResultArtifactClient) UpdateOneID(id string) *ResultArtifactUpdateOne {
	mutation := newResultArtifactMutation(c.config, OpUpdateOne, withResultArtifactID(id))
	return &ResultArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResultArtifact.
func (c *ResultArtifactClient) Delete() *ResultArtifactDelete {
	mutation := newResultArtifactMutation(c.config, OpDelete)
	return &ResultArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResultArtifactClient) DeleteOne(_m *ResultArtifact) *ResultArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResultArtifactClient) DeleteOneID(id string) *ResultArtifactDeleteOne {
	builder := c.Delete().Where(resultartifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResultArtifactDeleteOne{builder}
}

// Query returns a query builder for ResultArtifact.
func (c *ResultArtifactClient) Query() *ResultArtifactQuery {
	return &ResultArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResultArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a ResultArtifact entity by its id.
func (c *ResultArtifactClient) Get(ctx context.Context, id string) (*ResultArtifact, error) {
	return c.Query().Where(resultartifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResultArtifactClient) GetX(ctx context.Context, id string) *ResultArtifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a ResultArtifact.
func (c *ResultArtifactClient) QueryJob(_m *ResultArtifact) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(resultartifact.Table, resultartifact.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, resultartifact.JobTable, resultartifact.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResultArtifactClient) Hooks() []Hook {
	return c.hooks.ResultArtifact
}

// Interceptors returns the client interceptors.
func (c *ResultArtifactClient) Interceptors() []Interceptor {
	return c.inters.ResultArtifact
}

func (c *ResultArtifactClient) mutate(ctx context.Context, m *ResultArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResultArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResultArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResultArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResultArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResultArtifact mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentDefinition, AgentInvocation, DependencyGraph, DomainTemplate, Event, Job,
		Playbook, ResultArtifact []ent.Hook
	}
	inters struct {
		AgentDefinition, AgentInvocation, DependencyGraph, DomainTemplate, Event, Job,
		Playbook, ResultArtifact []ent.Interceptor
	}
)
