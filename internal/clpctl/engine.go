package clpctl

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/foreverhost/dbengine/internal/executor"
	"github.com/foreverhost/dbengine/internal/password"
	"github.com/google/uuid"
)

const (
	DefaultBinary        = "clpctl"
	DefaultSudo          = "sudo"
	DefaultDomainSuffix  = "forever-host.xyz"
	DefaultConfirmAnswer = "yes"

	namePrefix = "gdps-"
)

// Engine manages tenant databases through clpctl. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	executor       executor.Executor
	binary         string
	sudo           string
	domainSuffix   string
	confirmAnswer  string
	passwordLength int
	generate       func(length int) (string, error)
}

// Option customises an Engine.
type Option func(*Engine)

// WithBinary sets the clpctl binary name or path.
func WithBinary(binary string) Option {
	return func(e *Engine) { e.binary = binary }
}

// WithSudo sets the privilege escalation command. An empty string runs
// clpctl directly.
func WithSudo(sudo string) Option {
	return func(e *Engine) { e.sudo = sudo }
}

// WithDomainSuffix sets the parent domain tenant nodes live under.
func WithDomainSuffix(suffix string) Option {
	return func(e *Engine) { e.domainSuffix = suffix }
}

// WithConfirmAnswer sets the answer fed to the db:delete prompt.
func WithConfirmAnswer(answer string) Option {
	return func(e *Engine) { e.confirmAnswer = answer }
}

// WithPasswordLength sets the length of generated database passwords.
func WithPasswordLength(length int) Option {
	return func(e *Engine) { e.passwordLength = length }
}

// WithPasswordGenerator replaces the credential generator.
func WithPasswordGenerator(generate func(length int) (string, error)) Option {
	return func(e *Engine) { e.generate = generate }
}

// New returns an Engine running its commands through exec.
func New(exec executor.Executor, opts ...Option) *Engine {
	e := &Engine{
		executor:       exec,
		binary:         DefaultBinary,
		sudo:           DefaultSudo,
		domainSuffix:   DefaultDomainSuffix,
		confirmAnswer:  DefaultConfirmAnswer,
		passwordLength: password.DefaultLength,
		generate:       password.Generate,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// DatabaseName returns the database owned by a gdps tenant.
func DatabaseName(gdpsID string) string {
	return namePrefix + gdpsID
}

// DatabaseUserName returns the database user owned by a gdps tenant.
func DatabaseUserName(gdpsID string) string {
	return namePrefix + gdpsID
}

// DomainName returns the public domain of a node.
func (e *Engine) DomainName(node string) string {
	return node + "." + e.domainSuffix
}

// Create adds a database and user for the tenant under the node's domain and
// returns the generated password. On failure it returns false and an empty
// password.
func (e *Engine) Create(ctx context.Context, node, gdpsID string) (bool, string) {
	logger := operationLogger("create", gdpsID)

	pwd, err := e.generate(e.passwordLength)
	if err != nil {
		logger.Error("Database creation failed", "error", err)
		return false, ""
	}

	logger.Info("Creating database", "domain", e.DomainName(node), "database", DatabaseName(gdpsID))
	if _, err := e.executor.Execute(ctx, e.AddCommand(node, gdpsID, pwd)); err != nil {
		logger.Error("Database creation failed", "error", err)
		return false, ""
	}

	logger.Info("Successfully created database", "database", DatabaseName(gdpsID))
	return true, pwd
}

// ExportDatabase dumps the tenant database to path.
func (e *Engine) ExportDatabase(ctx context.Context, gdpsID, path string) bool {
	logger := operationLogger("export", gdpsID)

	logger.Info("Exporting database", "database", DatabaseName(gdpsID), "file", path)
	if _, err := e.executor.Execute(ctx, e.ExportCommand(gdpsID, path)); err != nil {
		logger.Error("Database export failed", "error", err)
		return false
	}

	logger.Info("Successfully exported database", "database", DatabaseName(gdpsID), "file", path)
	return true
}

// ImportDatabase loads the dump at path into the tenant database.
func (e *Engine) ImportDatabase(ctx context.Context, gdpsID, path string) bool {
	logger := operationLogger("import", gdpsID)

	logger.Info("Importing database", "database", DatabaseName(gdpsID), "file", path)
	if _, err := e.executor.Execute(ctx, e.ImportCommand(gdpsID, path)); err != nil {
		logger.Error("Database import failed", "error", err)
		return false
	}

	logger.Info("Successfully imported database", "database", DatabaseName(gdpsID), "file", path)
	return true
}

// DeleteDatabase removes the tenant database, answering the confirmation
// prompt clpctl asks before deleting.
func (e *Engine) DeleteDatabase(ctx context.Context, gdpsID string) bool {
	logger := operationLogger("delete", gdpsID)

	logger.Info("Deleting database", "database", DatabaseName(gdpsID))
	if _, err := e.executor.Execute(ctx, e.DeleteCommand(gdpsID)); err != nil {
		logger.Error("Database deletion failed", "error", err)
		return false
	}

	logger.Info("Successfully deleted database", "database", DatabaseName(gdpsID))
	return true
}

func operationLogger(operation, gdpsID string) *log.Logger {
	return log.With("op", uuid.NewString(), "operation", operation, "gdps", gdpsID)
}
