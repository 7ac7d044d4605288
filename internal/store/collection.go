// Package store keeps the EMR collections and documents in a model.Medium.
//
// Each collection is read from its medium key once, when the store is built,
// and the whole collection is written back on every mutation. A failed write
// leaves the in-memory collection as it was before the call.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/emr-server/internal/model"
)

// Option configures a store.
type Option func(*options)

type options struct {
	newID func() string
	now   func() time.Time
}

func defaultOptions() options {
	return options{
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithIDGenerator overrides the id generator (uuid v4 by default).
func WithIDGenerator(f func() string) Option {
	return func(o *options) { o.newID = f }
}

// WithClock overrides the clock used for createdAt.
func WithClock(f func() time.Time) Option {
	return func(o *options) { o.now = f }
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type collection[T model.Entity] struct {
	mu     sync.Mutex
	medium model.Medium
	key    string
	items  []T
	opts   options
}

func loadCollection[T model.Entity](ctx context.Context, medium model.Medium, key string, opts options) (*collection[T], error) {
	c := &collection[T]{
		medium: medium,
		key:    key,
		opts:   opts,
	}

	raw, err := medium.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), &c.items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return c, nil
}

// cloner is implemented by entities holding maps or slices.
type cloner[T any] interface {
	Clone() T
}

func cloneItem[T any](item T) T {
	if c, ok := any(item).(cloner[T]); ok {
		return c.Clone()
	}
	return item
}

func cloneItems[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = cloneItem(item)
	}
	return out
}

func (c *collection[T]) list() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cloneItems(c.items)
}

func (c *collection[T]) get(id string) (T, error) {
	return c.find(func(item T) bool { return item.EntityID() == id })
}

func (c *collection[T]) find(match func(T) bool) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.items, match)
	if i < 0 {
		var zero T
		return zero, model.ErrNotFound
	}
	return cloneItem(c.items[i]), nil
}

// add stamps item through init, appends it and persists.
func (c *collection[T]) add(ctx context.Context, item T, init func(item *T, id string, now time.Time)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item = cloneItem(item)
	init(&item, c.opts.newID(), c.opts.now())

	next := append(slices.Clone(c.items), item)
	if err := c.persist(ctx, next); err != nil {
		var zero T
		return zero, err
	}

	return cloneItem(item), nil
}

// insert is add with a uniqueness check run under the same lock.
func (c *collection[T]) insert(ctx context.Context, item T, conflict func(T) bool, init func(item *T, id string, now time.Time)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.ContainsFunc(c.items, conflict) {
		var zero T
		return zero, model.ErrAlreadyExists
	}

	item = cloneItem(item)
	init(&item, c.opts.newID(), c.opts.now())

	next := append(slices.Clone(c.items), item)
	if err := c.persist(ctx, next); err != nil {
		var zero T
		return zero, err
	}

	return cloneItem(item), nil
}

func (c *collection[T]) update(ctx context.Context, id string, apply func(item *T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := slices.IndexFunc(c.items, func(item T) bool { return item.EntityID() == id })
	if i < 0 {
		return zero, model.ErrNotFound
	}

	next := slices.Clone(c.items)
	next[i] = cloneItem(next[i])
	if err := apply(&next[i]); err != nil {
		return zero, err
	}

	if err := c.persist(ctx, next); err != nil {
		return zero, err
	}

	return cloneItem(next[i]), nil
}

// remove drops every record with id. A missing id still rewrites the key.
func (c *collection[T]) remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(c.items), func(item T) bool { return item.EntityID() == id })
	return c.persist(ctx, next)
}

func (c *collection[T]) persist(ctx context.Context, next []T) error {
	if next == nil {
		next = []T{}
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}

	if err := c.medium.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.key, err)
	}

	c.items = next
	return nil
}
