// Package cli implements the dove command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/matzehuels/dove/pkg/project"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "dove"

	// envPrefix prefixes every environment variable read by the CLI.
	envPrefix = "DOVE"
)

// Configuration keys, shared by flags and environment variables
// (e.g. --project-dir and DOVE_PROJECT_DIR).
const (
	keyVerbose    = "verbose"
	keyProjectDir = "project-dir"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	config *viper.Viper
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	config.SetDefault(keyProjectDir, ".")

	return &CLI{
		Logger: newLogger(w, level),
		config: config,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadProject loads the project containing the configured project directory.
func (c *CLI) loadProject() (*project.Project, error) {
	return project.Load(c.config.GetString(keyProjectDir), c.Logger)
}
