// Package closer collects shutdown hooks and runs them in reverse
// registration order on application exit.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type hook struct {
	name string
	fn   func(ctx context.Context) error
}

type Closer struct {
	mu    sync.Mutex
	hooks []hook
}

var global = &Closer{}

func Add(fn func(ctx context.Context) error) {
	global.AddNamed("", fn)
}

func AddNamed(name string, fn func(ctx context.Context) error) {
	global.AddNamed(name, fn)
}

func CloseAll(ctx context.Context) error {
	return global.CloseAll(ctx)
}

func (c *Closer) AddNamed(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, hook{name: name, fn: fn})
}

// CloseAll runs every hook LIFO and joins their errors. Hooks run even
// if earlier ones failed.
func (c *Closer) CloseAll(ctx context.Context) error {
	c.mu.Lock()
	hooks := c.hooks
	c.hooks = nil
	c.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i].fn(ctx); err != nil {
			if hooks[i].name != "" {
				err = fmt.Errorf("%s: %w", hooks[i].name, err)
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
