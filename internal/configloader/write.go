package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/assistkit/pkg/config"
	"github.com/yaklabco/assistkit/pkg/fsutil"
)

// ErrConfigExists is returned by WriteConfig when path exists and force is false.
var ErrConfigExists = errors.New("config file already exists")

const configHeader = `# assistkit configuration
# Assist keys are handler or assist IDs, e.g. split_string or separate_binary_bytes.`

// WriteConfig writes cfg as YAML to path.
func WriteConfig(ctx context.Context, cfg *config.Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	content, err := cfg.ToYAMLWithHeader(configHeader)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, path, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
