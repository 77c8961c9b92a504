package clpctl

import (
	"github.com/foreverhost/dbengine/internal/executor"
)

// AddCommand builds the db:add invocation for a tenant.
func (e *Engine) AddCommand(node, gdpsID, password string) *executor.Command {
	return e.command("db:add",
		"--domainName="+e.DomainName(node),
		"--databaseName="+DatabaseName(gdpsID),
		"--databaseUserName="+DatabaseUserName(gdpsID),
		"--databaseUserPassword="+password,
	)
}

// ExportCommand builds the db:export invocation writing to path.
func (e *Engine) ExportCommand(gdpsID, path string) *executor.Command {
	return e.command("db:export",
		"--databaseName="+DatabaseName(gdpsID),
		"--file="+path,
	)
}

// ImportCommand builds the db:import invocation reading from path.
func (e *Engine) ImportCommand(gdpsID, path string) *executor.Command {
	return e.command("db:import",
		"--databaseName="+DatabaseName(gdpsID),
		"--file="+path,
	)
}

// DeleteCommand builds the db:delete invocation with its confirmation answer
// on standard input.
func (e *Engine) DeleteCommand(gdpsID string) *executor.Command {
	return e.command("db:delete",
		"--databaseName="+DatabaseName(gdpsID),
	).WithStdin(e.confirmAnswer + "\n")
}

func (e *Engine) command(action string, flags ...string) *executor.Command {
	args := make([]string, 0, len(flags)+3)
	if e.sudo != "" {
		args = append(args, e.sudo)
	}
	args = append(args, e.binary, action)
	args = append(args, flags...)

	return executor.NewCommand(args...)
}
