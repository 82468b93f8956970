// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package stratum

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/z5labs/stratum/internal/slogfield"
	"github.com/z5labs/stratum/merge"

	"gopkg.in/yaml.v3"
)

// Merger folds an ordered list of configuration documents into a single
// tree, applying later documents as overrides of earlier ones.
//
// A Merger owns its accumulated state for the duration of a single Merge
// or Unmarshal call only; it is safe to reuse, but a single call must not
// be shared across goroutines without external synchronization.
type Merger struct {
	loader Loader
	log    *slog.Logger
}

type options struct {
	logHandler slog.Handler
}

// Option configures a Merger.
type Option func(*options)

// LogHandler sets the slog.Handler the Merger reports skipped documents
// to. By default nothing is logged.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

// New returns a Merger which loads documents via the given Loader.
func New(loader Loader, opts ...Option) *Merger {
	o := &options{
		logHandler: noopLogHandler{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Merger{
		loader: loader,
		log:    slog.New(o.logHandler),
	}
}

// MalformedDocumentError occurs when a loaded document is not valid YAML.
type MalformedDocumentError struct {
	Path  string
	cause error
}

// Error implements the error interface.
func (e MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed configuration document %s: %s", e.Path, e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e MalformedDocumentError) Unwrap() error {
	return e.cause
}

// Merge folds the documents at the given paths, in order, into a single
// tree. Each document is loaded, parsed and merged on top of the result of
// the previous ones; later documents win on conflict.
//
// Merge never fails: a document that cannot be loaded or parsed is logged
// at debug level and skipped, and the fold continues with whatever has been
// merged so far. An empty document is a no-op. If every path fails the
// returned tree is an empty mapping.
func (m *Merger) Merge(paths ...string) *yaml.Node {
	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, path := range paths {
		source, err := m.loadDocument(path)
		if err != nil {
			m.log.LogAttrs(
				context.Background(),
				slog.LevelDebug,
				"skipping configuration document",
				slogfield.Path(path),
				slogfield.Error(err),
			)
			continue
		}

		merged, replace := merge.Merge(root, source)
		if replace {
			root = merged
		}
	}
	return root
}

// Unmarshal folds the documents at the given paths, like Merge, and then
// decodes the merged tree into v.
//
// The fold itself knows nothing about v's type: the merged tree is dumped
// back to YAML, reparsed generically and then decoded via the "config"
// struct tag. Values implementing encoding.TextUnmarshaler and
// time.Duration fields are decoded from their string forms. A tree whose
// shape does not match v is fatal to the call and reported to the caller.
func (m *Merger) Unmarshal(v any, paths ...string) error {
	root := m.Merge(paths...)

	b, err := yaml.Marshal(root)
	if err != nil {
		return err
	}

	raw := make(map[string]any)
	err = yaml.Unmarshal(b, &raw)
	if err != nil {
		return err
	}
	return decode(raw, v)
}

type noopLogHandler struct{}

func (noopLogHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (noopLogHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h noopLogHandler) WithAttrs(_ []slog.Attr) slog.Handler        { return h }
func (h noopLogHandler) WithGroup(name string) slog.Handler          { return h }

// loadDocument reads and parses a single document. A nil node with a nil
// error means the document was empty, which the merge treats as absent.
func (m *Merger) loadDocument(path string) (*yaml.Node, error) {
	b, err := m.loader.ReadConfiguration(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	err = yaml.Unmarshal(b, &doc)
	if err != nil {
		return nil, MalformedDocumentError{Path: path, cause: err}
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}
