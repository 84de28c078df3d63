// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/MKhiriev/rhoconnect-go/client"
	"github.com/MKhiriev/rhoconnect-go/config"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
)

// DefaultPartition is used for models tracked without a partition option.
const DefaultPartition = "app"

// Family is the persistence family a tracked model belongs to.
type Family string

const (
	FamilyGORM   Family = "gorm"
	FamilyRecord Family = "record"
)

// Action is a lifecycle event forwarded to RhoConnect.
type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

// Hook returns the hook name reported in warnings, e.g. "rhoconnect_create".
func (a Action) Hook() string {
	return "rhoconnect_" + string(a)
}

// PartitionFunc computes the partition for a model instance on every hook
// call.
type PartitionFunc func(model any) string

// Registration is the read-only view of a tracked model type.
type Registration struct {
	Name   string
	Family Family
	Hooks  map[Action]string
}

type registration struct {
	name      string
	family    Family
	partition PartitionFunc
}

func (r *registration) view() Registration {
	return Registration{
		Name:   r.name,
		Family: r.family,
		Hooks: map[Action]string{
			ActionCreate:  ActionCreate.Hook(),
			ActionUpdate:  ActionUpdate.Hook(),
			ActionDestroy: ActionDestroy.Hook(),
		},
	}
}

// TrackOption customizes a registration.
type TrackOption func(*registration)

// WithPartition sets a fixed partition, such as "app" for data shared by
// every user or a user name.
func WithPartition(partition string) TrackOption {
	return func(r *registration) {
		r.partition = func(any) string { return partition }
	}
}

// WithPartitionFunc sets a partition computed from the model instance.
func WithPartitionFunc(fn PartitionFunc) TrackOption {
	return func(r *registration) {
		if fn != nil {
			r.partition = fn
		}
	}
}

// WithName overrides the resource name, which defaults to the Go type name.
func WithName(name string) TrackOption {
	return func(r *registration) {
		if name != "" {
			r.name = name
		}
	}
}

// ObserverOption configures an [Observer].
type ObserverOption func(*Observer)

// WithConfig sets the configuration the observer reads SyncTimeAsInt from
// and hands to the default client factory.
func WithConfig(cfg *config.Config) ObserverOption {
	return func(o *Observer) {
		o.cfg = cfg
	}
}

// WithFactory replaces the client factory. Tests inject mocks through it.
func WithFactory(f client.Factory) ObserverOption {
	return func(o *Observer) {
		o.factory = f
	}
}

// WithWarnFunc replaces the warning side channel.
func WithWarnFunc(fn WarnFunc) ObserverOption {
	return func(o *Observer) {
		o.warn = fn
	}
}

// WithLogger sets the logger used by the default warning channel and client
// factory.
func WithLogger(l *logger.Logger) ObserverOption {
	return func(o *Observer) {
		o.logger = l
	}
}

// Observer pushes tracked model changes to RhoConnect. Tracking is expected
// to happen at startup; hooks may run concurrently afterwards.
type Observer struct {
	cfg     *config.Config
	factory client.Factory
	warn    WarnFunc
	logger  *logger.Logger

	mu      sync.RWMutex
	tracked map[reflect.Type]*registration
}

// NewObserver creates an observer. Without options it builds a fresh client
// from the process default configuration for every hook and logs failures.
func NewObserver(opts ...ObserverOption) *Observer {
	o := &Observer{tracked: make(map[reflect.Type]*registration)}
	for _, opt := range opts {
		opt(o)
	}

	o.logger = logger.OrNop(o.logger)
	if o.factory == nil {
		o.factory = client.NewFactory(client.WithConfig(o.cfg), client.WithLogger(o.logger))
	}
	if o.warn == nil {
		o.warn = LogWarnings(o.logger)
	}

	return o
}

// Track registers the type of model. model may be a value or a pointer.
func (o *Observer) Track(model any, opts ...TrackOption) error {
	if isNil(model) {
		return ErrUnsupportedModel
	}
	t := indirectType(reflect.TypeOf(model))

	reg := &registration{name: t.Name()}
	switch {
	case implements[Record](t):
		if !implements[Serializer](t) {
			return fmt.Errorf("%w: implement resource.Serializer (SyncAttributes) on %s", ErrSerializerMissing, t.Name())
		}
		reg.family = FamilyRecord
	case t.Kind() != reflect.Struct:
		return fmt.Errorf("%w: %s", ErrUnsupportedModel, t)
	default:
		if _, err := parseSchema(reflect.New(t).Interface()); err != nil {
			return err
		}
		reg.family = FamilyGORM
	}

	WithPartition(DefaultPartition)(reg)
	for _, opt := range opts {
		opt(reg)
	}

	o.mu.Lock()
	o.tracked[t] = reg
	o.mu.Unlock()

	return nil
}

// Registration reports how the type of model is tracked.
func (o *Observer) Registration(model any) (Registration, bool) {
	if isNil(model) {
		return Registration{}, false
	}
	reg, ok := o.lookup(indirectType(reflect.TypeOf(model)))
	if !ok {
		return Registration{}, false
	}
	return reg.view(), true
}

// AttachGORM installs the observer's callbacks on db. They run after gorm's
// own create, update and delete callbacks and only act on tracked types.
func (o *Observer) AttachGORM(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Create().After("gorm:create").Register("rhoconnect:after_create", o.gormCallback(ActionCreate)); err != nil {
		return fmt.Errorf("register create callback: %w", err)
	}
	if err := cb.Update().After("gorm:update").Register("rhoconnect:after_update", o.gormCallback(ActionUpdate)); err != nil {
		return fmt.Errorf("register update callback: %w", err)
	}
	if err := cb.Delete().After("gorm:delete").Register("rhoconnect:after_delete", o.gormCallback(ActionDestroy)); err != nil {
		return fmt.Errorf("register delete callback: %w", err)
	}

	return nil
}

// AfterCreate runs the create hook for model.
func (o *Observer) AfterCreate(ctx context.Context, model any) {
	o.after(ctx, ActionCreate, model)
}

// AfterUpdate runs the update hook for model.
func (o *Observer) AfterUpdate(ctx context.Context, model any) {
	o.after(ctx, ActionUpdate, model)
}

// AfterDestroy runs the destroy hook for model.
func (o *Observer) AfterDestroy(ctx context.Context, model any) {
	o.after(ctx, ActionDestroy, model)
}

func (o *Observer) after(ctx context.Context, action Action, model any) {
	if SyncSkipped(ctx) {
		return
	}
	if isNil(model) {
		o.warn(ctx, newWarning("<nil>", action.Hook(), ErrUnsupportedObject))
		return
	}

	t := indirectType(reflect.TypeOf(model))
	reg, ok := o.lookup(t)
	if !ok {
		o.warn(ctx, newWarning(t.Name(), action.Hook(), fmt.Errorf("%w: %s", ErrNotTracked, t.Name())))
		return
	}
	defer o.recoverHook(ctx, reg.name, action)

	_, attrs, err := Normalize(model, o.timeAsInt())
	if err != nil {
		o.warn(ctx, newWarning(reg.name, action.Hook(), err))
		return
	}

	o.sync(ctx, reg, action, model, attrs)
}

func (o *Observer) gormCallback(action Action) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement == nil || tx.Statement.Schema == nil {
			return
		}
		if SyncSkipped(tx.Statement.Context) {
			return
		}
		reg, ok := o.lookup(tx.Statement.Schema.ModelType)
		if !ok || reg.family != FamilyGORM {
			return
		}

		ctx := tx.Statement.Context
		s := tx.Statement.Schema
		rv := tx.Statement.ReflectValue

		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				o.syncGORM(ctx, reg, action, s, reflect.Indirect(rv.Index(i)))
			}
		case reflect.Struct:
			o.syncGORM(ctx, reg, action, s, rv)
		}
	}
}

func (o *Observer) syncGORM(ctx context.Context, reg *registration, action Action, s *schema.Schema, rv reflect.Value) {
	defer o.recoverHook(ctx, reg.name, action)

	if pk := s.PrioritizedPrimaryField; pk != nil {
		if _, zero := pk.ValueOf(ctx, rv); zero {
			o.logger.Debug().
				Str("model", reg.name).
				Str("hook", action.Hook()).
				Msg("skipping sync of model without primary key value")
			return
		}
	}

	var (
		model any
		attrs models.Attributes
	)
	if rv.CanAddr() {
		model = rv.Addr().Interface()
	} else {
		model = rv.Interface()
	}

	if ser, ok := model.(Serializer); ok {
		attrs = normalizeAttributes(ser.SyncAttributes(), o.timeAsInt())
	} else {
		attrs = normalizeAttributes(schemaAttributes(ctx, s, rv), o.timeAsInt())
	}

	o.sync(ctx, reg, action, model, attrs)
}

// sync pushes one change. Failures are reported through the warn channel and
// never returned.
func (o *Observer) sync(ctx context.Context, reg *registration, action Action, model any, attrs models.Attributes) {
	if ctx == nil {
		ctx = context.Background()
	}

	err := o.push(ctx, reg.name, reg.partition(model), action, attrs)
	if err != nil {
		o.warn(ctx, newWarning(reg.name, action.Hook(), err))
	}
}

// recoverHook reports a panic raised while syncing as a warning. The host's
// save or delete still completes.
func (o *Observer) recoverHook(ctx context.Context, name string, action Action) {
	if r := recover(); r != nil {
		o.warn(ctx, newWarning(name, action.Hook(), fmt.Errorf("%w: %v", ErrHookPanicked, r)))
	}
}

func (o *Observer) push(ctx context.Context, name, partition string, action Action, attrs models.Attributes) error {
	if o.factory == nil {
		return ErrObserverNotStarted
	}
	syncer, err := o.factory()
	if err != nil {
		return err
	}

	var resp *client.Response
	switch action {
	case ActionCreate:
		resp, err = syncer.Create(ctx, name, partition, attrs)
	case ActionUpdate:
		resp, err = syncer.Update(ctx, name, partition, attrs)
	case ActionDestroy:
		resp, err = syncer.Destroy(ctx, name, partition, attrs)
	default:
		err = errors.New("unknown action " + string(action))
	}
	if err != nil {
		return err
	}

	return client.CheckResponse(resp)
}

func (o *Observer) lookup(t reflect.Type) (*registration, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	reg, ok := o.tracked[t]
	return reg, ok
}

func (o *Observer) timeAsInt() bool {
	return config.OrDefault(o.cfg).SyncTimeAsInt
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// implements reports whether T or *T satisfies I.
func implements[I any](t reflect.Type) bool {
	iface := reflect.TypeFor[I]()
	return t.Implements(iface) || reflect.PointerTo(t).Implements(iface)
}
