// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/danahmadi/bookora_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danahmadi/bookora_backend/internal/repo/availabilityrule"
	"github.com/danahmadi/bookora_backend/internal/repo/booking"
	"github.com/danahmadi/bookora_backend/internal/repo/business"
	"github.com/danahmadi/bookora_backend/internal/repo/businessmember"
	"github.com/danahmadi/bookora_backend/internal/repo/businesssettings"
	"github.com/danahmadi/bookora_backend/internal/repo/charge"
	"github.com/danahmadi/bookora_backend/internal/repo/customer"
	"github.com/danahmadi/bookora_backend/internal/repo/notification"
	"github.com/danahmadi/bookora_backend/internal/repo/providerprofile"
	"github.com/danahmadi/bookora_backend/internal/repo/serviceoffering"
	"github.com/danahmadi/bookora_backend/internal/repo/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AvailabilityRule is the client for interacting with the AvailabilityRule builders.
	AvailabilityRule *AvailabilityRuleClient
	// Booking is the client for interacting with the Booking builders.
	Booking *BookingClient
	// Business is the client for interacting with the Business builders.
	Business *BusinessClient
	// BusinessMember is the client for interacting with the BusinessMember builders.
	BusinessMember *BusinessMemberClient
	// BusinessSettings is the client for interacting with the BusinessSettings builders.
	BusinessSettings *BusinessSettingsClient
	// Charge is the client for interacting with the Charge builders.
	Charge *ChargeClient
	// Customer is the client for interacting with the Customer builders.
	Customer *CustomerClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// ProviderProfile is the client for interacting with the ProviderProfile builders.
	ProviderProfile *ProviderProfileClient
	// ServiceOffering is the client for interacting with the ServiceOffering builders.
	ServiceOffering *ServiceOfferingClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AvailabilityRule = NewAvailabilityRuleClient(c.config)
	c.Booking = NewBookingClient(c.config)
	c.Business = NewBusinessClient(c.config)
	c.BusinessMember = NewBusinessMemberClient(c.config)
	c.BusinessSettings = NewBusinessSettingsClient(c.config)
	c.Charge = NewChargeClient(c.config)
	c.Customer = NewCustomerClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.ProviderProfile = NewProviderProfileClient(c.config)
	c.ServiceOffering = NewServiceOfferingClient(c.config)
	c.User = NewUserClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AvailabilityRule: NewAvailabilityRuleClient(cfg),
		Booking:          NewBookingClient(cfg),
		Business:         NewBusinessClient(cfg),
		BusinessMember:   NewBusinessMemberClient(cfg),
		BusinessSettings: NewBusinessSettingsClient(cfg),
		Charge:           NewChargeClient(cfg),
		Customer:         NewCustomerClient(cfg),
		Notification:     NewNotificationClient(cfg),
		ProviderProfile:  NewProviderProfileClient(cfg),
		ServiceOffering:  NewServiceOfferingClient(cfg),
		User:             NewUserClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AvailabilityRule: NewAvailabilityRuleClient(cfg),
		Booking:          NewBookingClient(cfg),
		Business:         NewBusinessClient(cfg),
		BusinessMember:   NewBusinessMemberClient(cfg),
		BusinessSettings: NewBusinessSettingsClient(cfg),
		Charge:           NewChargeClient(cfg),
		Customer:         NewCustomerClient(cfg),
		Notification:     NewNotificationClient(cfg),
		ProviderProfile:  NewProviderProfileClient(cfg),
		ServiceOffering:  NewServiceOfferingClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AvailabilityRule.
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
		c.AvailabilityRule, c.Booking, c.Business, c.BusinessMember, c.BusinessSettings,
		c.Charge, c.Customer, c.Notification, c.ProviderProfile, c.ServiceOffering,
		c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AvailabilityRule, c.Booking, c.Business, c.BusinessMember, c.BusinessSettings,
		c.Charge, c.Customer, c.Notification, c.ProviderProfile, c.ServiceOffering,
		c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AvailabilityRuleMutation:
		return c.AvailabilityRule.mutate(ctx, m)
	case *BookingMutation:
		return c.Booking.mutate(ctx, m)
	case *BusinessMutation:
		return c.Business.mutate(ctx, m)
	case *BusinessMemberMutation:
		return c.BusinessMember.mutate(ctx, m)
	case *BusinessSettingsMutation:
		return c.BusinessSettings.mutate(ctx, m)
	case *ChargeMutation:
		return c.Charge.mutate(ctx, m)
	case *CustomerMutation:
		return c.Customer.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *ProviderProfileMutation:
		return c.ProviderProfile.mutate(ctx, m)
	case *ServiceOfferingMutation:
		return c.ServiceOffering.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AvailabilityRuleClient is a client for the AvailabilityRule schema.
type AvailabilityRuleClient struct {
	config
}

// NewAvailabilityRuleClient returns a client for the AvailabilityRule from the given config.
func NewAvailabilityRuleClient(c config) *AvailabilityRuleClient {
	return &AvailabilityRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `availabilityrule.Hooks(f(g(h())))`.
func (c *AvailabilityRuleClient) Use(hooks ...Hook) {
	c.hooks.AvailabilityRule = append(c.hooks.AvailabilityRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `availabilityrule.Intercept(f(g(h())))`.
func (c *AvailabilityRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.AvailabilityRule = append(c.inters.AvailabilityRule, interceptors...)
}

// Create returns a builder for creating a AvailabilityRule entity.
func (c *AvailabilityRuleClient) Create() *AvailabilityRuleCreate {
	mutation := newAvailabilityRuleMutation(c.config, OpCreate)
	return &AvailabilityRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AvailabilityRule entities.
func (c *AvailabilityRuleClient) CreateBulk(builders ...*AvailabilityRuleCreate) *AvailabilityRuleCreateBulk {
	return &AvailabilityRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AvailabilityRuleClient) MapCreateBulk(slice any, setFunc func(*AvailabilityRuleCreate, int)) *AvailabilityRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AvailabilityRuleCreateBulk{err: fmt.Errorf("calling to AvailabilityRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AvailabilityRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AvailabilityRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AvailabilityRule.
func (c *AvailabilityRuleClient) Update() *AvailabilityRuleUpdate {
	mutation := newAvailabilityRuleMutation(c.config, OpUpdate)
	return &AvailabilityRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AvailabilityRuleClient) UpdateOne(_m *AvailabilityRule) *AvailabilityRuleUpdateOne {
	mutation := newAvailabilityRuleMutation(c.config, OpUpdateOne, withAvailabilityRule(_m))
	return &AvailabilityRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AvailabilityRuleClient) UpdateOneID(id uuid.UUID) *AvailabilityRuleUpdateOne {
	mutation := newAvailabilityRuleMutation(c.config, OpUpdateOne, withAvailabilityRuleID(id))
	return &AvailabilityRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AvailabilityRule.
func (c *AvailabilityRuleClient) Delete() *AvailabilityRuleDelete {
	mutation := newAvailabilityRuleMutation(c.config, OpDelete)
	return &AvailabilityRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AvailabilityRuleClient) DeleteOne(_m *AvailabilityRule) *AvailabilityRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AvailabilityRuleClient) DeleteOneID(id uuid.UUID) *AvailabilityRuleDeleteOne {
	builder := c.Delete().Where(availabilityrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AvailabilityRuleDeleteOne{builder}
}

// Query returns a query builder for AvailabilityRule.
func (c *AvailabilityRuleClient) Query() *AvailabilityRuleQuery {
	return &AvailabilityRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAvailabilityRule},
		inters: c.Interceptors(),
	}
}

// Get returns a AvailabilityRule entity by its id.
func (c *AvailabilityRuleClient) Get(ctx context.Context, id uuid.UUID) (*AvailabilityRule, error) {
	return c.Query().Where(availabilityrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AvailabilityRuleClient) GetX(ctx context.Context, id uuid.UUID) *AvailabilityRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AvailabilityRuleClient) Hooks() []Hook {
	return c.hooks.AvailabilityRule
}

// Interceptors returns the client interceptors.
func (c *AvailabilityRuleClient) Interceptors() []Interceptor {
	return c.inters.AvailabilityRule
}

func (c *AvailabilityRuleClient) mutate(ctx context.Context, m *AvailabilityRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AvailabilityRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AvailabilityRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AvailabilityRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AvailabilityRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AvailabilityRule mutation op: %q", m.Op())
	}
}

// BookingClient is a client for the Booking schema.
type BookingClient struct {
	config
}

// NewBookingClient returns a client for the Booking from the given config.
func NewBookingClient(c config) *BookingClient {
	return &BookingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `booking.Hooks(f(g(h())))`.
func (c *BookingClient) Use(hooks ...Hook) {
	c.hooks.Booking = append(c.hooks.Booking, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `booking.Intercept(f(g(h())))`.
func (c *BookingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Booking = append(c.inters.Booking, interceptors...)
}

// Create returns a builder for creating a Booking entity.
func (c *BookingClient) Create() *BookingCreate {
	mutation := newBookingMutation(c.config, OpCreate)
	return &BookingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Booking entities.
func (c *BookingClient) CreateBulk(builders ...*BookingCreate) *BookingCreateBulk {
	return &BookingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BookingClient) MapCreateBulk(slice any, setFunc func(*BookingCreate, int)) *BookingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BookingCreateBulk{err: fmt.Errorf("calling to BookingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BookingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BookingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Booking.
func (c *BookingClient) Update() *BookingUpdate {
	mutation := newBookingMutation(c.config, OpUpdate)
	return &BookingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BookingClient) UpdateOne(_m *Booking) *BookingUpdateOne {
	mutation := newBookingMutation(c.config, OpUpdateOne, withBooking(_m))
	return &BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BookingClient) UpdateOneID(id uuid.UUID) *BookingUpdateOne {
	mutation := newBookingMutation(c.config, OpUpdateOne, withBookingID(id))
	return &BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Booking.
func (c *BookingClient) Delete() *BookingDelete {
	mutation := newBookingMutation(c.config, OpDelete)
	return &BookingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BookingClient) DeleteOne(_m *Booking) *BookingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BookingClient) DeleteOneID(id uuid.UUID) *BookingDeleteOne {
	builder := c.Delete().Where(booking.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BookingDeleteOne{builder}
}

// Query returns a query builder for Booking.
func (c *BookingClient) Query() *BookingQuery {
	return &BookingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBooking},
		inters: c.Interceptors(),
	}
}

// Get returns a Booking entity by its id.
func (c *BookingClient) Get(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return c.Query().Where(booking.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BookingClient) GetX(ctx context.Context, id uuid.UUID) *Booking {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BookingClient) Hooks() []Hook {
	return c.hooks.Booking
}

// Interceptors returns the client interceptors.
func (c *BookingClient) Interceptors() []Interceptor {
	return c.inters.Booking
}

func (c *BookingClient) mutate(ctx context.Context, m *BookingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BookingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BookingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BookingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Booking mutation op: %q", m.Op())
	}
}

// BusinessClient is a client for the Business schema.
type BusinessClient struct {
	config
}

// NewBusinessClient returns a client for the Business from the given config.
func NewBusinessClient(c config) *BusinessClient {
	return &BusinessClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `business.Hooks(f(g(h())))`.
func (c *BusinessClient) Use(hooks ...Hook) {
	c.hooks.Business = append(c.hooks.Business, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `business.Intercept(f(g(h())))`.
func (c *BusinessClient) Intercept(interceptors ...Interceptor) {
	c.inters.Business = append(c.inters.Business, interceptors...)
}

// Create returns a builder for creating a Business entity.
func (c *BusinessClient) Create() *BusinessCreate {
	mutation := newBusinessMutation(c.config, OpCreate)
	return &BusinessCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Business entities.
func (c *BusinessClient) CreateBulk(builders ...*BusinessCreate) *BusinessCreateBulk {
	return &BusinessCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessClient) MapCreateBulk(slice any, setFunc func(*BusinessCreate, int)) *BusinessCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessCreateBulk{err: fmt.Errorf("calling to BusinessClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Business.
func (c *BusinessClient) Update() *BusinessUpdate {
	mutation := newBusinessMutation(c.config, OpUpdate)
	return &BusinessUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessClient) UpdateOne(_m *Business) *BusinessUpdateOne {
	mutation := newBusinessMutation(c.config, OpUpdateOne, withBusiness(_m))
	return &BusinessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessClient) UpdateOneID(id uuid.UUID) *BusinessUpdateOne {
	mutation := newBusinessMutation(c.config, OpUpdateOne, withBusinessID(id))
	return &BusinessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Business.
func (c *BusinessClient) Delete() *BusinessDelete {
	mutation := newBusinessMutation(c.config, OpDelete)
	return &BusinessDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessClient) DeleteOne(_m *Business) *BusinessDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessClient) DeleteOneID(id uuid.UUID) *BusinessDeleteOne {
	builder := c.Delete().Where(business.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessDeleteOne{builder}
}

// Query returns a query builder for Business.
func (c *BusinessClient) Query() *BusinessQuery {
	return &BusinessQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusiness},
		inters: c.Interceptors(),
	}
}

// Get returns a Business entity by its id.
func (c *BusinessClient) Get(ctx context.Context, id uuid.UUID) (*Business, error) {
	return c.Query().Where(business.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessClient) GetX(ctx context.Context, id uuid.UUID) *Business {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembers queries the members edge of a Business.
func (c *BusinessClient) QueryMembers(_m *Business) *BusinessMemberQuery {
	query := (&BusinessMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(businessmember.Table, businessmember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.MembersTable, business.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySettings queries the settings edge of a Business.
func (c *BusinessClient) QuerySettings(_m *Business) *BusinessSettingsQuery {
	query := (&BusinessSettingsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(businesssettings.Table, businesssettings.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, business.SettingsTable, business.SettingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessClient) Hooks() []Hook {
	return c.hooks.Business
}

// Interceptors returns the client interceptors.
func (c *BusinessClient) Interceptors() []Interceptor {
	return c.inters.Business
}

func (c *BusinessClient) mutate(ctx context.Context, m *BusinessMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Business mutation op: %q", m.Op())
	}
}

// BusinessMemberClient is a client for the BusinessMember schema.
type BusinessMemberClient struct {
	config
}

// NewBusinessMemberClient returns a client for the BusinessMember from the given config.
func NewBusinessMemberClient(c config) *BusinessMemberClient {
	return &BusinessMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businessmember.Hooks(f(g(h())))`.
func (c *BusinessMemberClient) Use(hooks ...Hook) {
	c.hooks.BusinessMember = append(c.hooks.BusinessMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businessmember.Intercept(f(g(h())))`.
func (c *BusinessMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessMember = append(c.inters.BusinessMember, interceptors...)
}

// Create returns a builder for creating a BusinessMember entity.
func (c *BusinessMemberClient) Create() *BusinessMemberCreate {
	mutation := newBusinessMemberMutation(c.config, OpCreate)
	return &BusinessMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessMember entities.
func (c *BusinessMemberClient) CreateBulk(builders ...*BusinessMemberCreate) *BusinessMemberCreateBulk {
	return &BusinessMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessMemberClient) MapCreateBulk(slice any, setFunc func(*BusinessMemberCreate, int)) *BusinessMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessMemberCreateBulk{err: fmt.Errorf("calling to BusinessMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessMember.
func (c *BusinessMemberClient) Update() *BusinessMemberUpdate {
	mutation := newBusinessMemberMutation(c.config, OpUpdate)
	return &BusinessMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessMemberClient) UpdateOne(_m *BusinessMember) *BusinessMemberUpdateOne {
	mutation := newBusinessMemberMutation(c.config, OpUpdateOne, withBusinessMember(_m))
	return &BusinessMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessMemberClient) UpdateOneID(id uuid.UUID) *BusinessMemberUpdateOne {
	mutation := newBusinessMemberMutation(c.config, OpUpdateOne, withBusinessMemberID(id))
	return &BusinessMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessMember.
func (c *BusinessMemberClient) Delete() *BusinessMemberDelete {
	mutation := newBusinessMemberMutation(c.config, OpDelete)
	return &BusinessMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessMemberClient) DeleteOne(_m *BusinessMember) *BusinessMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessMemberClient) DeleteOneID(id uuid.UUID) *BusinessMemberDeleteOne {
	builder := c.Delete().Where(businessmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessMemberDeleteOne{builder}
}

// Query returns a query builder for BusinessMember.
func (c *BusinessMemberClient) Query() *BusinessMemberQuery {
	return &BusinessMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessMember},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessMember entity by its id.
func (c *BusinessMemberClient) Get(ctx context.Context, id uuid.UUID) (*BusinessMember, error) {
	return c.Query().Where(businessmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessMemberClient) GetX(ctx context.Context, id uuid.UUID) *BusinessMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a BusinessMember.
func (c *BusinessMemberClient) QueryBusiness(_m *BusinessMember) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businessmember.Table, businessmember.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, businessmember.BusinessTable, businessmember.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUser queries the user edge of a BusinessMember.
func (c *BusinessMemberClient) QueryUser(_m *BusinessMember) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businessmember.Table, businessmember.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, businessmember.UserTable, businessmember.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessMemberClient) Hooks() []Hook {
	return c.hooks.BusinessMember
}

// Interceptors returns the client interceptors.
func (c *BusinessMemberClient) Interceptors() []Interceptor {
	return c.inters.BusinessMember
}

func (c *BusinessMemberClient) mutate(ctx context.Context, m *BusinessMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BusinessMember mutation op: %q", m.Op())
	}
}

// BusinessSettingsClient is a client for the BusinessSettings schema.
type BusinessSettingsClient struct {
	config
}

// NewBusinessSettingsClient returns a client for the BusinessSettings from the given config.
func NewBusinessSettingsClient(c config) *BusinessSettingsClient {
	return &BusinessSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businesssettings.Hooks(f(g(h())))`.
func (c *BusinessSettingsClient) Use(hooks ...Hook) {
	c.hooks.BusinessSettings = append(c.hooks.BusinessSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businesssettings.Intercept(f(g(h())))`.
func (c *BusinessSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessSettings = append(c.inters.BusinessSettings, interceptors...)
}

// Create returns a builder for creating a BusinessSettings entity.
func (c *BusinessSettingsClient) Create() *BusinessSettingsCreate {
	mutation := newBusinessSettingsMutation(c.config, OpCreate)
	return &BusinessSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessSettings entities.
func (c *BusinessSettingsClient) CreateBulk(builders ...*BusinessSettingsCreate) *BusinessSettingsCreateBulk {
	return &BusinessSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessSettingsClient) MapCreateBulk(slice any, setFunc func(*BusinessSettingsCreate, int)) *BusinessSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessSettingsCreateBulk{err: fmt.Errorf("calling to BusinessSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessSettings.
func (c *BusinessSettingsClient) Update() *BusinessSettingsUpdate {
	mutation := newBusinessSettingsMutation(c.config, OpUpdate)
	return &BusinessSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessSettingsClient) UpdateOne(_m *BusinessSettings) *BusinessSettingsUpdateOne {
	mutation := newBusinessSettingsMutation(c.config, OpUpdateOne, withBusinessSettings(_m))
	return &BusinessSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessSettingsClient) UpdateOneID(id uuid.UUID) *BusinessSettingsUpdateOne {
	mutation := newBusinessSettingsMutation(c.config, OpUpdateOne, withBusinessSettingsID(id))
	return &BusinessSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessSettings.
func (c *BusinessSettingsClient) Delete() *BusinessSettingsDelete {
	mutation := newBusinessSettingsMutation(c.config, OpDelete)
	return &BusinessSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessSettingsClient) DeleteOne(_m *BusinessSettings) *BusinessSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessSettingsClient) DeleteOneID(id uuid.UUID) *BusinessSettingsDeleteOne {
	builder := c.Delete().Where(businesssettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessSettingsDeleteOne{builder}
}

// Query returns a query builder for BusinessSettings.
func (c *BusinessSettingsClient) Query() *BusinessSettingsQuery {
	return &BusinessSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessSettings entity by its id.
func (c *BusinessSettingsClient) Get(ctx context.Context, id uuid.UUID) (*BusinessSettings, error) {
	return c.Query().Where(businesssettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessSettingsClient) GetX(ctx context.Context, id uuid.UUID) *BusinessSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a BusinessSettings.
func (c *BusinessSettingsClient) QueryBusiness(_m *BusinessSettings) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businesssettings.Table, businesssettings.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, businesssettings.BusinessTable, businesssettings.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessSettingsClient) Hooks() []Hook {
	return c.hooks.BusinessSettings
}

// Interceptors returns the client interceptors.
func (c *BusinessSettingsClient) Interceptors() []Interceptor {
	return c.inters.BusinessSettings
}

func (c *BusinessSettingsClient) mutate(ctx context.Context, m *BusinessSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BusinessSettings mutation op: %q", m.Op())
	}
}

// ChargeClient is a client for the Charge schema.
type ChargeClient struct {
	config
}

// NewChargeClient returns a client for the Charge from the given config.
func NewChargeClient(c config) *ChargeClient {
	return &ChargeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `charge.Hooks(f(g(h())))`.
func (c *ChargeClient) Use(hooks ...Hook) {
	c.hooks.Charge = append(c.hooks.Charge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `charge.Intercept(f(g(h())))`.
func (c *ChargeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Charge = append(c.inters.Charge, interceptors...)
}

// Create returns a builder for creating a Charge entity.
func (c *ChargeClient) Create() *ChargeCreate {
	mutation := newChargeMutation(c.config, OpCreate)
	return &ChargeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Charge entities.
func (c *ChargeClient) CreateBulk(builders ...*ChargeCreate) *ChargeCreateBulk {
	return &ChargeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChargeClient) MapCreateBulk(slice any, setFunc func(*ChargeCreate, int)) *ChargeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChargeCreateBulk{err: fmt.Errorf("calling to ChargeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChargeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChargeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Charge.
func (c *ChargeClient) Update() *ChargeUpdate {
	mutation := newChargeMutation(c.config, OpUpdate)
	return &ChargeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChargeClient) UpdateOne(_m *Charge) *ChargeUpdateOne {
	mutation := newChargeMutation(c.config, OpUpdateOne, withCharge(_m))
	return &ChargeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChargeClient) UpdateOneID(id uuid.UUID) *ChargeUpdateOne {
	mutation := newChargeMutation(c.config, OpUpdateOne, withChargeID(id))
	return &ChargeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Charge.
func (c *ChargeClient) Delete() *ChargeDelete {
	mutation := newChargeMutation(c.config, OpDelete)
	return &ChargeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChargeClient) DeleteOne(_m *Charge) *ChargeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChargeClient) DeleteOneID(id uuid.UUID) *ChargeDeleteOne {
	builder := c.Delete().Where(charge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChargeDeleteOne{builder}
}

// Query returns a query builder for Charge.
func (c *ChargeClient) Query() *ChargeQuery {
	return &ChargeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCharge},
		inters: c.Interceptors(),
	}
}

// Get returns a Charge entity by its id.
func (c *ChargeClient) Get(ctx context.Context, id uuid.UUID) (*Charge, error) {
	return c.Query().Where(charge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChargeClient) GetX(ctx context.Context, id uuid.UUID) *Charge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChargeClient) Hooks() []Hook {
	return c.hooks.Charge
}

// Interceptors returns the client interceptors.
func (c *ChargeClient) Interceptors() []Interceptor {
	return c.inters.Charge
}

func (c *ChargeClient) mutate(ctx context.Context, m *ChargeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChargeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChargeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChargeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChargeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Charge mutation op: %q", m.Op())
	}
}

// CustomerClient is a client for the Customer schema.
type CustomerClient struct {
	config
}

// NewCustomerClient returns a client for the Customer from the given config.
func NewCustomerClient(c config) *CustomerClient {
	return &CustomerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customer.Hooks(f(g(h())))`.
func (c *CustomerClient) Use(hooks ...Hook) {
	c.hooks.Customer = append(c.hooks.Customer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customer.Intercept(f(g(h())))`.
func (c *CustomerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Customer = append(c.inters.Customer, interceptors...)
}

// Create returns a builder for creating a Customer entity.
func (c *CustomerClient) Create() *CustomerCreate {
	mutation := newCustomerMutation(c.config, OpCreate)
	return &CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Customer entities.
func (c *CustomerClient) CreateBulk(builders ...*CustomerCreate) *CustomerCreateBulk {
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomerClient) MapCreateBulk(slice any, setFunc func(*CustomerCreate, int)) *CustomerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomerCreateBulk{err: fmt.Errorf("calling to CustomerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Customer.
func (c *CustomerClient) Update() *CustomerUpdate {
	mutation := newCustomerMutation(c.config, OpUpdate)
	return &CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomerClient) UpdateOne(_m *Customer) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomer(_m))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomerClient) UpdateOneID(id uuid.UUID) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomerID(id))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Customer.
func (c *CustomerClient) Delete() *CustomerDelete {
	mutation := newCustomerMutation(c.config, OpDelete)
	return &CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomerClient) DeleteOne(_m *Customer) *CustomerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomerClient) DeleteOneID(id uuid.UUID) *CustomerDeleteOne {
	builder := c.Delete().Where(customer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomerDeleteOne{builder}
}

// Query returns a query builder for Customer.
func (c *CustomerClient) Query() *CustomerQuery {
	return &CustomerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomer},
		inters: c.Interceptors(),
	}
}

// Get returns a Customer entity by its id.
func (c *CustomerClient) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return c.Query().Where(customer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomerClient) GetX(ctx context.Context, id uuid.UUID) *Customer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CustomerClient) Hooks() []Hook {
	return c.hooks.Customer
}

// Interceptors returns the client interceptors.
func (c *CustomerClient) Interceptors() []Interceptor {
	return c.inters.Customer
}

func (c *CustomerClient) mutate(ctx context.Context, m *CustomerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Customer mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// ProviderProfileClient is a client for the ProviderProfile schema.
type ProviderProfileClient struct {
	config
}

// NewProviderProfileClient returns a client for the ProviderProfile from the given config.
func NewProviderProfileClient(c config) *ProviderProfileClient {
	return &ProviderProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `providerprofile.Hooks(f(g(h())))`.
func (c *ProviderProfileClient) Use(hooks ...Hook) {
	c.hooks.ProviderProfile = append(c.hooks.ProviderProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `providerprofile.Intercept(f(g(h())))`.
func (c *ProviderProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProviderProfile = append(c.inters.ProviderProfile, interceptors...)
}

// Create returns a builder for creating a ProviderProfile entity.
func (c *ProviderProfileClient) Create() *ProviderProfileCreate {
	mutation := newProviderProfileMutation(c.config, OpCreate)
	return &ProviderProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProviderProfile entities.
func (c *ProviderProfileClient) CreateBulk(builders ...*ProviderProfileCreate) *ProviderProfileCreateBulk {
	return &ProviderProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderProfileClient) MapCreateBulk(slice any, setFunc func(*ProviderProfileCreate, int)) *ProviderProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderProfileCreateBulk{err: fmt.Errorf("calling to ProviderProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProviderProfile.
func (c *ProviderProfileClient) Update() *ProviderProfileUpdate {
	mutation := newProviderProfileMutation(c.config, OpUpdate)
	return &ProviderProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderProfileClient) UpdateOne(_m *ProviderProfile) *ProviderProfileUpdateOne {
	mutation := newProviderProfileMutation(c.config, OpUpdateOne, withProviderProfile(_m))
	return &ProviderProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderProfileClient) UpdateOneID(id uuid.UUID) *ProviderProfileUpdateOne {
	mutation := newProviderProfileMutation(c.config, OpUpdateOne, withProviderProfileID(id))
	return &ProviderProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProviderProfile.
func (c *ProviderProfileClient) Delete() *ProviderProfileDelete {
	mutation := newProviderProfileMutation(c.config, OpDelete)
	return &ProviderProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderProfileClient) DeleteOne(_m *ProviderProfile) *ProviderProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderProfileClient) DeleteOneID(id uuid.UUID) *ProviderProfileDeleteOne {
	builder := c.Delete().Where(providerprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderProfileDeleteOne{builder}
}

// Query returns a query builder for ProviderProfile.
func (c *ProviderProfileClient) Query() *ProviderProfileQuery {
	return &ProviderProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProviderProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a ProviderProfile entity by its id.
func (c *ProviderProfileClient) Get(ctx context.Context, id uuid.UUID) (*ProviderProfile, error) {
	return c.Query().Where(providerprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderProfileClient) GetX(ctx context.Context, id uuid.UUID) *ProviderProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProviderProfileClient) Hooks() []Hook {
	return c.hooks.ProviderProfile
}

// Interceptors returns the client interceptors.
func (c *ProviderProfileClient) Interceptors() []Interceptor {
	return c.inters.ProviderProfile
}

func (c *ProviderProfileClient) mutate(ctx context.Context, m *ProviderProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ProviderProfile mutation op: %q", m.Op())
	}
}

// ServiceOfferingClient is a client for the ServiceOffering schema.
type ServiceOfferingClient struct {
	config
}

// NewServiceOfferingClient returns a client for the ServiceOffering from the given config.
func NewServiceOfferingClient(c config) *ServiceOfferingClient {
	return &ServiceOfferingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `serviceoffering.Hooks(f(g(h())))`.
func (c *ServiceOfferingClient) Use(hooks ...Hook) {
	c.hooks.ServiceOffering = append(c.hooks.ServiceOffering, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `serviceoffering.Intercept(f(g(h())))`.
func (c *ServiceOfferingClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceOffering = append(c.inters.ServiceOffering, interceptors...)
}

// Create returns a builder for creating a ServiceOffering entity.
func (c *ServiceOfferingClient) Create() *ServiceOfferingCreate {
	mutation := newServiceOfferingMutation(c.config, OpCreate)
	return &ServiceOfferingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceOffering entities.
func (c *ServiceOfferingClient) CreateBulk(builders ...*ServiceOfferingCreate) *ServiceOfferingCreateBulk {
	return &ServiceOfferingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceOfferingClient) MapCreateBulk(slice any, setFunc func(*ServiceOfferingCreate, int)) *ServiceOfferingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceOfferingCreateBulk{err: fmt.Errorf("calling to ServiceOfferingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceOfferingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceOfferingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceOffering.
func (c *ServiceOfferingClient) Update() *ServiceOfferingUpdate {
	mutation := newServiceOfferingMutation(c.config, OpUpdate)
	return &ServiceOfferingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceOfferingClient) UpdateOne(_m *ServiceOffering) *ServiceOfferingUpdateOne {
	mutation := newServiceOfferingMutation(c.config, OpUpdateOne, withServiceOffering(_m))
	return &ServiceOfferingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceOfferingClient) UpdateOneID(id uuid.UUID) *ServiceOfferingUpdateOne {
	mutation := newServiceOfferingMutation(c.config, OpUpdateOne, withServiceOfferingID(id))
	return &ServiceOfferingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceOffering.
func (c *ServiceOfferingClient) Delete() *ServiceOfferingDelete {
	mutation := newServiceOfferingMutation(c.config, OpDelete)
	return &ServiceOfferingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceOfferingClient) DeleteOne(_m *ServiceOffering) *ServiceOfferingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceOfferingClient) DeleteOneID(id uuid.UUID) *ServiceOfferingDeleteOne {
	builder := c.Delete().Where(serviceoffering.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceOfferingDeleteOne{builder}
}

// Query returns a query builder for ServiceOffering.
func (c *ServiceOfferingClient) Query() *ServiceOfferingQuery {
	return &ServiceOfferingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceOffering},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceOffering entity by its id.
func (c *ServiceOfferingClient) Get(ctx context.Context, id uuid.UUID) (*ServiceOffering, error) {
	return c.Query().Where(serviceoffering.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceOfferingClient) GetX(ctx context.Context, id uuid.UUID) *ServiceOffering {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServiceOfferingClient) Hooks() []Hook {
	return c.hooks.ServiceOffering
}

// Interceptors returns the client interceptors.
func (c *ServiceOfferingClient) Interceptors() []Interceptor {
	return c.inters.ServiceOffering
}

func (c *ServiceOfferingClient) mutate(ctx context.Context, m *ServiceOfferingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceOfferingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceOfferingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceOfferingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceOfferingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ServiceOffering mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AvailabilityRule, Booking, Business, BusinessMember, BusinessSettings, Charge,
		Customer, Notification, ProviderProfile, ServiceOffering, User []ent.Hook
	}
	inters struct {
		AvailabilityRule, Booking, Business, BusinessMember, BusinessSettings, Charge,
		Customer, Notification, ProviderProfile, ServiceOffering,
		User []ent.Interceptor
	}
)
