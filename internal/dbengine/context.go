package dbengine

import (
	"context"
	"errors"

	"github.com/foreverhost/dbengine/internal/clpctl"
	"github.com/foreverhost/dbengine/internal/config"
)

// contextKey is an unexported type for context keys to prevent collisions
type contextKey int

const (
	configKey contextKey = iota
	engineKey
)

var (
	// ErrNoConfig is returned when the configuration is not found in context
	ErrNoConfig = errors.New("dbengine configuration not found in context")
	// ErrNoEngine is returned when the clpctl engine is not found in context
	ErrNoEngine = errors.New("clpctl engine not found in context")
)

// Context wraps the standard context with dbengine-specific values
type Context struct {
	context.Context
}

// New creates a new dbengine context carrying the configuration and engine
func New(parent context.Context, cfg *config.Config, engine *clpctl.Engine) Context {
	ctx := WithConfig(parent, cfg)
	ctx = WithEngine(ctx, engine)
	return Context{ctx}
}

// WithConfig returns a new context with the configuration set
func WithConfig(parent context.Context, cfg *config.Config) context.Context {
	return context.WithValue(parent, configKey, cfg)
}

// WithEngine returns a new context with the engine set
func WithEngine(parent context.Context, engine *clpctl.Engine) context.Context {
	return context.WithValue(parent, engineKey, engine)
}

// Config returns the configuration from the context
func Config(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, ErrNoConfig
	}
	return cfg, nil
}

// Engine returns the clpctl engine from the context
func Engine(ctx context.Context) (*clpctl.Engine, error) {
	engine, ok := ctx.Value(engineKey).(*clpctl.Engine)
	if !ok || engine == nil {
		return nil, ErrNoEngine
	}
	return engine, nil
}

// MustEngine returns the engine or panics if not found
func MustEngine(ctx context.Context) *clpctl.Engine {
	engine, err := Engine(ctx)
	if err != nil {
		panic(err)
	}
	return engine
}

// Convenience method on the wrapped context
func (c Context) Config() (*config.Config, error) {
	return Config(c.Context)
}

// Convenience method on the wrapped context
func (c Context) Engine() (*clpctl.Engine, error) {
	return Engine(c.Context)
}
