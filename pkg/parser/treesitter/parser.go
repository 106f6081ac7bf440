// Package treesitter provides a Parser implementation for Rust sources
// using tree-sitter.
package treesitter

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/yaklabco/assistkit/pkg/syntax"
)

// LanguageRust is the language name recorded on parsed snapshots.
const LanguageRust = "rust"

// Parser turns Rust source into a FileSnapshot with a navigable tree.
// A Parser may be shared between goroutines.
type Parser struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// New creates a new Rust parser.
func New() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())
	return &Parser{parser: parser}
}

// Language returns the language handled by the parser.
func (p *Parser) Language() string {
	return LanguageRust
}

// Parse converts raw source bytes into a fully-populated FileSnapshot.
// The snapshot owns a copy of content and must be closed by the caller.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*syntax.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot := syntax.NewFileSnapshot(path, copyContent(content))
	snapshot.Language = LanguageRust

	p.mu.Lock()
	tree, err := p.parser.ParseCtx(ctx, nil, snapshot.Content)
	p.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		tree.Close()
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot.Tree = newTree(tree, snapshot.Content)

	return snapshot, nil
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return []byte{}
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
