package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	derr "github.com/matzehuels/dove/pkg/errors"
	"github.com/matzehuels/dove/pkg/manifest"
	"github.com/matzehuels/dove/pkg/metadata"
	"github.com/matzehuels/dove/pkg/project"
)

// metadataCommand creates the metadata command.
func (c *CLI) metadataCommand() *cobra.Command {
	var m Metadata

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Print project metadata",
		Long: `Print the project manifest.

By default the manifest is printed as TOML, exactly as loaded. With --json the
normalized metadata document is printed instead: the package name is resolved,
defaults are applied and dependencies are split into git and local lists.

Examples:
  dove metadata            # Dove.toml as loaded
  dove metadata --json     # JSON metadata for IDEs and build tools`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := c.loadProject()
			if err != nil {
				return err
			}
			return m.Run(cmd.Context(), proj, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&m.JSON, "json", "j", false, "print the JSON metadata document")

	return cmd
}

// Metadata prints a project's manifest in one of two formats.
type Metadata struct {
	JSON bool // Print the JSON metadata document instead of TOML
}

// Run renders proj and writes it, followed by a newline, to w in a single
// write. The JSON format first sets the package name to the resolved project
// name, mutating proj.Manifest.
//
// Rendering failures return a SERIALIZATION_ERROR and nothing
// is written.
func (m Metadata) Run(ctx context.Context, proj *project.Project, w io.Writer) error {
	logger := loggerFromContext(ctx)

	out, err := m.render(ctx, proj)
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if _, err := w.Write(out); err != nil {
		return derr.Wrap(derr.ErrCodeInternal, err, "write metadata")
	}
	logger.Debug("Wrote metadata", "format", m.format(), "bytes", len(out))
	return nil
}

func (m Metadata) render(ctx context.Context, proj *project.Project) ([]byte, error) {
	if !m.JSON {
		out, err := manifest.Encode(proj.Manifest)
		if err != nil {
			return nil, derr.Wrap(derr.ErrCodeSerialization, err, "render %s", manifest.FileName)
		}
		return out, nil
	}

	name := proj.ProjectName()
	proj.Manifest.Package.Name = &name
	loggerFromContext(ctx).Debug("Resolved project name", "name", name)

	out, err := metadata.Encode(metadata.FromManifest(proj.Manifest))
	if err != nil {
		return nil, derr.Wrap(derr.ErrCodeSerialization, err, "render metadata")
	}
	return out, nil
}

func (m Metadata) format() string {
	if m.JSON {
		return "json"
	}
	return "toml"
}
