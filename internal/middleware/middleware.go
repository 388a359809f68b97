package middleware

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	CtxKeySettings contextKey = "settings"
	CtxKeyHub      contextKey = "hub"
)

type CommandFactory func() *cobra.Command

type MiddlewareFunc func(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error

type MiddlewareChain func(factory CommandFactory) CommandFactory

type contextKey string

// UseMiddlewareChain wraps a CommandFactory so that every middleware runs,
// in order, before the command's own PreRunE.
func UseMiddlewareChain(middlewares ...MiddlewareFunc) MiddlewareChain {
	chain := make([]MiddlewareFunc, len(middlewares))
	copy(chain, middlewares)

	return func(factory CommandFactory) CommandFactory {
		return func() *cobra.Command {
			cmd := factory()
			orig := cmd.PreRunE

			final := func(c *cobra.Command, a []string) error {
				if orig != nil {
					return orig(c, a)
				}
				return nil
			}

			cmd.PreRunE = func(c *cobra.Command, a []string) error {
				var run func(i int, c *cobra.Command, a []string) error
				run = func(i int, c *cobra.Command, a []string) error {
					if i == len(chain) {
						return final(c, a)
					}
					return chain[i](c, a, func(nc *cobra.Command, na []string) error {
						return run(i+1, nc, na)
					})
				}
				return run(0, c, a)
			}
			return cmd
		}
	}
}

// withValue stores val in the command context unless a value is already
// there. Commands built by tests come with their dependencies pre-injected.
func withValue(cmd *cobra.Command, key contextKey, build func() (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if ctx.Value(key) != nil {
		return nil
	}
	val, err := build()
	if err != nil {
		return err
	}
	cmd.SetContext(context.WithValue(ctx, key, val))
	return nil
}

func Get[T any](cmd *cobra.Command, key contextKey) (T, error) {
	var zero T

	ctx := cmd.Context()
	if ctx == nil {
		return zero, fmt.Errorf("command context is nil")
	}

	val := ctx.Value(key)
	if val == nil {
		return zero, fmt.Errorf("context value %q is nil", key)
	}

	casted, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("context value %q has wrong type: %T", key, val)
	}

	return casted, nil
}
