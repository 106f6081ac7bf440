package assist

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/assistkit/internal/logging"
	"github.com/yaklabco/assistkit/pkg/config"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

// Engine runs assist handlers over a parsed snapshot.
type Engine struct {
	// Registry holds all available handlers.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// List returns the id and label of every applicable assist at selection.
// Edits are not built.
func (e *Engine) List(
	ctx context.Context,
	file *syntax.FileSnapshot,
	selection syntax.TextRange,
	cfg *config.Config,
) (*Result, error) {
	return e.run(ctx, file, selection, cfg, ModeList)
}

// Resolve builds every applicable assist at selection and sorts them by
// target length, narrowest first. Assists without a target sort last.
func (e *Engine) Resolve(
	ctx context.Context,
	file *syntax.FileSnapshot,
	selection syntax.TextRange,
	cfg *config.Config,
) (*Result, error) {
	result, err := e.run(ctx, file, selection, cfg, ModeResolve)
	if err != nil {
		return nil, err
	}

	SortByTarget(result.Assists)

	return result, nil
}

func (e *Engine) run(
	ctx context.Context,
	file *syntax.FileSnapshot,
	selection syntax.TextRange,
	cfg *config.Config,
	mode Mode,
) (*Result, error) {
	if file == nil || file.Tree == nil {
		return nil, errors.New("file has not been parsed")
	}
	if !file.ValidRange(selection) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSelection, selection)
	}

	logger := logging.FromContext(ctx)
	resolved := ResolveHandlers(e.Registry, cfg)
	allowed := assistAllowed(cfg)

	offered := make([][]Assist, len(resolved))
	failures := make([]error, len(resolved))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs(cfg))

	for i, rh := range resolved {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			hctx := NewContext(groupCtx, file, selection, mode, rh.Handler, rh.Config)
			hctx.allowed = allowed

			start := time.Now()
			err := rh.Handler.Apply(hctx)

			offered[i] = hctx.Assists()
			failures[i] = errors.Join(err, hctx.Err())

			logger.Debug("handler finished",
				logging.FieldAssist, rh.Handler.ID(),
				logging.FieldMode, mode,
				logging.FieldOffered, len(offered[i]),
				logging.FieldElapsed, time.Since(start),
			)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("assists cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assists cancelled: %w", err)
	}

	result := &Result{HandlerErrors: make(map[string]error)}
	for i, rh := range resolved {
		result.Assists = append(result.Assists, offered[i]...)
		if failures[i] != nil {
			result.HandlerErrors[rh.Handler.ID()] = failures[i]
		}
	}

	return result, nil
}

// SortByTarget stable-sorts assists by target length, narrowest first.
// Assists without a target sort last.
func SortByTarget(assists []Assist) {
	slices.SortStableFunc(assists, func(a, b Assist) int {
		la, okA := a.TargetLen()
		lb, okB := b.TargetLen()
		switch {
		case okA && okB:
			return la - lb
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
}

func jobs(cfg *config.Config) int {
	if cfg != nil && cfg.Jobs > 0 {
		return cfg.Jobs
	}
	return runtime.GOMAXPROCS(0)
}
