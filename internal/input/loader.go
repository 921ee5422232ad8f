// Package input loads puzzle input from disk.
//
// Plain files are returned as they are. Markdown notes (.md, .markdown) may
// carry the input in a fenced code block; the first such block is used, and
// the whole document when there is none. Loaded inputs are cached, keyed by
// path and modification time, so solving several parts of a puzzle reads the
// file once.
package input

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// DefaultCacheSize is the number of inputs kept by NewLoader.
const DefaultCacheSize = 32

// Loader reads puzzle inputs.
type Loader struct {
	markdown goldmark.Markdown
	cache    *lru.Cache[string, string]
	hits     int
	reads    int
}

// NewLoader creates a Loader caching up to DefaultCacheSize inputs.
func NewLoader() *Loader {
	l, err := NewLoaderWithSize(DefaultCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return l
}

// NewLoaderWithSize creates a Loader caching up to size inputs.
func NewLoaderWithSize(size int) (*Loader, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create input cache: %w", err)
	}
	return &Loader{
		markdown: goldmark.New(),
		cache:    cache,
	}, nil
}

// Load returns the puzzle text stored at path.
func (l *Loader) Load(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve input path %s: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to access input file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("input path is a directory: %s", path)
	}

	key := fmt.Sprintf("%s@%d:%d", absPath, info.ModTime().UnixNano(), info.Size())
	if cached, ok := l.cache.Get(key); ok {
		l.hits++
		return cached, nil
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	l.reads++

	content := string(data)
	if isMarkdown(absPath) {
		if block, ok := l.firstCodeBlock(data); ok {
			content = block
		}
	}

	l.cache.Add(key, content)
	return content, nil
}

// Cached returns the number of inputs currently held in the cache.
func (l *Loader) Cached() int {
	return l.cache.Len()
}

// Stats returns how many loads were served from the cache and how many
// read the file. A Loader is not safe for concurrent use.
func (l *Loader) Stats() (hits, reads int) {
	return l.hits, l.reads
}

// firstCodeBlock returns the content of the first fenced code block.
func (l *Loader) firstCodeBlock(source []byte) (string, bool) {
	doc := l.markdown.Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			buf.Write(segment.Value(source))
		}
		found = true
		return ast.WalkStop, nil
	})

	return buf.String(), found
}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}
