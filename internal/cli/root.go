package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/dove/pkg/buildinfo"
	derr "github.com/matzehuels/dove/pkg/errors"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Persistent flags are bound to the CLI configuration, so each of them can
// also be set through the environment:
//
//	--verbose, -v        DOVE_VERBOSE
//	--project-dir, -p    DOVE_PROJECT_DIR
//
// Errors are not printed by cobra; the caller reports them (see [PrintError]).
func (c *CLI) RootCommand() *cobra.Command {
	var bindErr error

	root := &cobra.Command{
		Use:           appName,
		Short:         "Dove manages Move projects",
		Long:          `Dove is a package manager for Move projects. It reads the Dove.toml manifest of a project and exports it for other tools.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if bindErr != nil {
				return bindErr
			}
			if c.config.GetBool(keyVerbose) {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolP(keyVerbose, "v", false, "enable verbose logging")
	flags.StringP(keyProjectDir, "p", ".", "project directory (searched upwards for Dove.toml)")
	bindErr = bindFlags(c.config, flags, keyVerbose, keyProjectDir)

	root.AddCommand(c.metadataCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// bindFlags binds each named flag of flags to the configuration key of the
// same name.
func bindFlags(config *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		if err := config.BindPFlag(key, flags.Lookup(key)); err != nil {
			return derr.Wrap(derr.ErrCodeInternal, err, "bind flag %q", key)
		}
	}
	return nil
}
