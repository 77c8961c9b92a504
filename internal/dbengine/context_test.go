package dbengine

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foreverhost/dbengine/internal/clpctl"
	"github.com/foreverhost/dbengine/internal/config"
	"github.com/foreverhost/dbengine/internal/executor"
)

func TestContext(t *testing.T) {
	cfg := config.Default()
	engine := clpctl.New(executor.Local{})

	ctx := New(context.Background(), cfg, engine)

	gotCfg, err := ctx.Config()
	require.NoError(t, err)
	assert.Same(t, cfg, gotCfg)

	gotEngine, err := ctx.Engine()
	require.NoError(t, err)
	assert.Same(t, engine, gotEngine)
	assert.Same(t, engine, MustEngine(ctx))
}

func TestContext_Missing(t *testing.T) {
	ctx := context.Background()

	_, err := Config(ctx)
	assert.ErrorIs(t, err, ErrNoConfig)

	_, err = Engine(ctx)
	assert.ErrorIs(t, err, ErrNoEngine)

	assert.Panics(t, func() { MustEngine(ctx) })
}

func TestNewExecutor(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		dryRun  bool
		want    executor.Executor
		wantErr bool
	}{
		{name: "exec mode", want: executor.Local{}},
		{
			name:   "shell mode",
			mutate: func(c *config.Config) { c.Executor.Mode = config.ModeShell },
			want:   executor.Shell{Path: "/bin/sh"},
		},
		{
			name:   "dry run wins over mode",
			mutate: func(c *config.Config) { c.Executor.Mode = config.ModeShell },
			dryRun: true,
			want:   executor.Printer{Out: &bytes.Buffer{}},
		},
		{
			name:   "timeout wraps executor",
			mutate: func(c *config.Config) { c.Executor.Timeout = "30s" },
			want:   Timeout{Executor: executor.Local{}, Timeout: 30 * time.Second},
		},
		{
			name:    "unknown mode",
			mutate:  func(c *config.Config) { c.Executor.Mode = "ssh" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			got, err := NewExecutor(cfg, tt.dryRun, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEngine_UsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tool.NoSudo = true
	cfg.Domain.Suffix = "example.test"
	cfg.Delete.Confirm = "y"

	engine := NewEngine(cfg, executor.Local{})

	assert.Equal(t, []string{"clpctl", "db:delete", "--databaseName=gdps-0001"}, engine.DeleteCommand("0001").Args)
	assert.Equal(t, "y\n", engine.DeleteCommand("0001").Stdin)
	assert.Equal(t, "node.example.test", engine.DomainName("node"))
}

func TestTimeout_Execute(t *testing.T) {
	exec := Timeout{Executor: executor.Local{}, Timeout: 100 * time.Millisecond}

	start := time.Now()
	_, err := exec.Execute(context.Background(), executor.NewCommand("sleep", "5"))
	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestTimeout_ExecuteStopsForkedChildren(t *testing.T) {
	exec := Timeout{Executor: executor.Local{}, Timeout: 200 * time.Millisecond}

	start := time.Now()
	out, err := exec.Execute(context.Background(), executor.NewCommand("sh", "-c", "sleep 3; echo done"))
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Empty(t, out)
}
