package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ProjectConfigName is the file name written by `assistkit init`.
const ProjectConfigName = ".assistkit.yml"

// ConfigPaths holds the discovered configuration files. Missing files are
// empty strings.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	projectConfigFiles = []string{ProjectConfigName, ".assistkit.yaml"}
	dirConfigFiles     = []string{"config.yaml", "config.yml"}
	vcsRootMarkers     = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths finds the system, user and project configuration files.
//   - system: /etc/assistkit/config.{yaml,yml} (%ProgramData% on Windows)
//   - user: $XDG_CONFIG_HOME/assistkit/config.{yaml,yml}
//   - project: .assistkit.{yml,yaml}, searched upward from workDir
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstExisting(systemConfigDir(), dirConfigFiles),
		User:    firstExisting(userConfigDir(), dirConfigFiles),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, "assistkit")
	}
	return "/etc/assistkit"
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "assistkit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "assistkit")
}

// firstExisting returns the first regular file among names in dir.
func firstExisting(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// FindProjectConfig walks upward from startDir looking for a project config.
// The walk stops after a VCS root, the home directory or the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}

		if path := firstExisting(dir, projectConfigFiles); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if isVCSRoot(dir) || dir == home || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
