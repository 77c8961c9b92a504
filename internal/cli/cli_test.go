package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foreverhost/dbengine/internal/executor"
	"github.com/foreverhost/dbengine/internal/password"
	"github.com/foreverhost/dbengine/internal/workflows"
)

type recordingExecutor struct {
	mu       sync.Mutex
	fail     bool
	commands []*executor.Command
}

func (r *recordingExecutor) Execute(_ context.Context, cmd *executor.Command) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands = append(r.commands, cmd)
	if r.fail {
		return "", &executor.ExecutionError{ExitCode: 1, Stderr: "clpctl error", Err: errors.New("exit status 1")}
	}
	return "", nil
}

func (r *recordingExecutor) lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, 0, len(r.commands))
	for _, c := range r.commands {
		lines = append(lines, c.String())
	}
	return lines
}

func run(t *testing.T, exec executor.Executor, args ...string) (string, error) {
	t.Helper()

	// keep config discovery away from any file in the package directory
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	cmd := newRootCommand(&rootOptions{executor: exec})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCreateCommand(t *testing.T) {
	exec := &recordingExecutor{}

	out, err := run(t, exec, "create", "myserver", "0001")
	require.NoError(t, err)

	pwd := strings.TrimSpace(out)
	assert.Len(t, pwd, password.DefaultLength)
	assert.Equal(t, []string{
		"sudo clpctl db:add --domainName=myserver.forever-host.xyz --databaseName=gdps-0001 --databaseUserName=gdps-0001 --databaseUserPassword=" + pwd,
	}, exec.lines())
}

func TestCreateCommand_Failure(t *testing.T) {
	_, err := run(t, &recordingExecutor{fail: true}, "create", "myserver", "0001")
	require.Error(t, err)
	assert.ErrorIs(t, err, workflows.ErrOperationFailed)
	assert.Contains(t, err.Error(), "gdps-0001")
}

func TestTransferCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "export",
			args: []string{"export", "0001", "/tmp/dump.sql"},
			want: "sudo clpctl db:export --databaseName=gdps-0001 --file=/tmp/dump.sql",
		},
		{
			name: "import",
			args: []string{"import", "0001", "/tmp/dump.sql"},
			want: "sudo clpctl db:import --databaseName=gdps-0001 --file=/tmp/dump.sql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &recordingExecutor{}
			_, err := run(t, exec, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, exec.lines())

			_, err = run(t, &recordingExecutor{fail: true}, tt.args...)
			assert.ErrorIs(t, err, workflows.ErrOperationFailed)
		})
	}
}

func TestDeleteCommand(t *testing.T) {
	exec := &recordingExecutor{}

	out, err := run(t, exec, "delete", "0003", "0002", "0001")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"echo yes | sudo clpctl db:delete --databaseName=gdps-0003",
		"echo yes | sudo clpctl db:delete --databaseName=gdps-0002",
		"echo yes | sudo clpctl db:delete --databaseName=gdps-0001",
	}, exec.lines())
	assert.Contains(t, out, "delete gdps-0002... SUCCESS")
	assert.Contains(t, out, "3 succeeded, 0 failed, 0 skipped")
}

func TestDeleteCommand_Failure(t *testing.T) {
	out, err := run(t, &recordingExecutor{fail: true}, "delete", "0001")
	assert.ErrorIs(t, err, workflows.ErrOperationFailed)
	assert.Contains(t, out, "delete gdps-0001... FAILED")
}

func TestDeleteCommand_RequiresID(t *testing.T) {
	_, err := run(t, &recordingExecutor{}, "delete")
	assert.Error(t, err)
}

func TestProvisionCommand(t *testing.T) {
	exec := &recordingExecutor{}

	out, err := run(t, exec, "provision", "myserver", "0001", "--from", "/tmp/seed.sql")
	require.NoError(t, err)

	lines := exec.lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "db:add")
	assert.Equal(t, "sudo clpctl db:import --databaseName=gdps-0001 --file=/tmp/seed.sql", lines[1])
	assert.Contains(t, out, "import gdps-0001... SUCCESS")
}

func TestProvisionCommand_FailedCreateSkipsImport(t *testing.T) {
	exec := &recordingExecutor{fail: true}

	out, err := run(t, exec, "provision", "myserver", "0001", "--from", "/tmp/seed.sql")
	assert.ErrorIs(t, err, workflows.ErrOperationFailed)
	assert.Len(t, exec.lines(), 1)
	assert.Contains(t, out, "import gdps-0001... SKIPPED")
}

func TestBackupCommand(t *testing.T) {
	exec := &recordingExecutor{}

	_, err := run(t, exec, "backup", "/var/backups", "0001", "0002")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"sudo clpctl db:export --databaseName=gdps-0001 --file=/var/backups/gdps-0001.sql",
		"sudo clpctl db:export --databaseName=gdps-0002 --file=/var/backups/gdps-0002.sql",
	}, exec.lines())
}

func TestPasswordCommand(t *testing.T) {
	out, err := run(t, &recordingExecutor{}, "password")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), password.DefaultLength)

	out, err = run(t, &recordingExecutor{}, "password", "--length", "32")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 32)

	_, err = run(t, &recordingExecutor{}, "password", "--length", "0")
	assert.ErrorIs(t, err, password.ErrInvalidLength)
}

func TestConfigFileIsUsed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dbengine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tool:\n  no_sudo: true\ndomain:\n  suffix: example.test\n"), 0o600))

	exec := &recordingExecutor{}
	out, err := run(t, exec, "--config", path, "create", "edge", "0042")
	require.NoError(t, err)

	pwd := strings.TrimSpace(out)
	assert.Equal(t, []string{
		"clpctl db:add --domainName=edge.example.test --databaseName=gdps-0042 --databaseUserName=gdps-0042 --databaseUserPassword=" + pwd,
	}, exec.lines())
}

func TestConfigViewCommand(t *testing.T) {
	out, err := run(t, &recordingExecutor{}, "config", "view", "-o", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, `binary = "clpctl"`)

	_, err = run(t, &recordingExecutor{}, "config", "view", "-o", "xml")
	assert.Error(t, err)
}

func TestDryRun(t *testing.T) {
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--dry-run", "delete", "0001"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "echo yes | sudo clpctl db:delete --databaseName=gdps-0001\n")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, &recordingExecutor{}, "--log-level", "loud", "password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
