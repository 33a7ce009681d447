// Package project locates and loads dove projects from disk.
//
// A project is a directory holding a [manifest.FileName] file. [Find] walks
// up from a starting directory to the nearest project root and [Load] reads
// its manifest:
//
//	proj, err := project.Load(".", logger)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(proj.ProjectName())
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	derr "github.com/matzehuels/dove/pkg/errors"
	"github.com/matzehuels/dove/pkg/manifest"
)

// Project is a loaded dove project.
type Project struct {
	Dir      string             // Absolute path of the project root
	Manifest *manifest.Manifest // Parsed manifest, owned by the caller
}

// ProjectName returns the explicit package name when the manifest declares
// one, otherwise the base name of the project directory.
func (p *Project) ProjectName() string {
	if name := p.Manifest.Package.Name; name != nil {
		return *name
	}
	return filepath.Base(p.Dir)
}

// ManifestPath returns the path of the project's manifest file.
func (p *Project) ManifestPath() string {
	return filepath.Join(p.Dir, manifest.FileName)
}

// Find returns the absolute path of the nearest directory at or above dir
// that contains a manifest file.
func Find(dir string) (string, error) {
	if err := derr.ValidateProjectDir(dir); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", derr.Wrap(derr.ErrCodeInvalidPath, err, "resolve %s", dir)
	}

	for cur := abs; ; {
		info, err := os.Stat(filepath.Join(cur, manifest.FileName))
		if err == nil && !info.IsDir() {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", derr.New(derr.ErrCodeFileNotFound, "no %s found in %s or any parent directory", manifest.FileName, abs)
		}
		cur = parent
	}
}

// Load finds the project containing dir and decodes its manifest.
// Unknown manifest keys are reported to logger at debug level and otherwise
// ignored. A nil logger uses log.Default().
func Load(dir string, logger *log.Logger) (*Project, error) {
	if logger == nil {
		logger = log.Default()
	}

	root, err := Find(dir)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(root, manifest.FileName)
	logger.Debug("Loading manifest", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derr.Wrap(derr.ErrCodeFileNotFound, err, "read %s", path)
	}

	m, unknown, err := manifest.Decode(data)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return nil, derr.New(derr.ErrCodeInvalidManifest, "parse %s: %s", path, perr.ErrorWithPosition())
		}
		return nil, derr.Wrap(derr.ErrCodeInvalidManifest, err, "decode %s", path)
	}
	for _, key := range unknown {
		logger.Debug("Ignoring unknown manifest key", "key", key)
	}

	return &Project{Dir: root, Manifest: m}, nil
}
