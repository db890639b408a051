// Package cmdutil provides shared dependencies and helpers for the CLI
// adapter's command tree: a Factory carrying global flag state and lazily
// resolved configuration/engine connections, and the outcome-to-exit-code
// mapping described in §6 of the specification this adapter implements.
package cmdutil

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/leynos/podbot/internal/config"
	"github.com/leynos/podbot/internal/engine"
	"github.com/leynos/podbot/internal/envport"
)

// Factory carries the global CLI flags and exposes lazily-initialized
// configuration and engine dependencies shared across subcommands.
type Factory struct {
	// Global flags, set by the root command before RunE runs.
	ConfigPath   string
	EngineSocket string
	Image        string
	Debug        bool

	// ExitCode is set by a command's RunE once it has a CommandOutcome, so
	// main can exit with the right status after Execute returns nil.
	ExitCode int

	Env envport.Env

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	configOnce sync.Once
	configData config.AppConfig
	configErr  error

	connectorOnce sync.Once
	connector     *engine.Connector
	connectorErr  error
}

// New creates a Factory wired to the real process environment and standard
// streams.
func New() *Factory {
	return &Factory{
		Env:    envport.OS,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Config resolves and caches the layered configuration, applying the
// Factory's CLI overrides on top of file and environment layers.
func (f *Factory) Config() (config.AppConfig, error) {
	f.configOnce.Do(func() {
		var opts []config.LoaderOption
		if f.ConfigPath != "" {
			opts = append(opts, config.WithConfigPath(f.ConfigPath))
		}
		loader := config.NewLoader(f.Env, opts...)
		f.configData, f.configErr = loader.Load(config.CLIOverrides{
			EngineSocket: f.EngineSocket,
			Image:        f.Image,
		})
	})
	return f.configData, f.configErr
}

// Connector resolves the engine socket from config, connects to it, and
// confirms it is reachable with a health check, caching the result for the
// lifetime of this Factory.
func (f *Factory) Connector(ctx context.Context) (*engine.Connector, error) {
	f.connectorOnce.Do(func() {
		cfg, err := f.Config()
		if err != nil {
			f.connectorErr = err
			return
		}
		socket := engine.ResolveSocket(cfg.EngineSocket, f.Env)
		conn, err := engine.Connect(socket)
		if err != nil {
			f.connectorErr = err
			return
		}
		if err := conn.HealthCheck(ctx); err != nil {
			f.connectorErr = err
			return
		}
		f.connector = conn
	})
	return f.connector, f.connectorErr
}

// CloseConnector releases the engine connector's resources, if one was ever
// created.
func (f *Factory) CloseConnector() {
	if f.connector != nil {
		_ = f.connector.Close()
	}
}
