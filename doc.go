// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package stratum merges layered YAML configuration documents.
//
// An application's configuration is often split across a base file plus
// environment- or deployment-specific override files. stratum folds such an
// ordered list of documents into one composite tree, applying later
// documents as overrides of earlier ones:
//
//	merger := stratum.New(stratum.LoaderFunc(os.ReadFile))
//	tree := merger.Merge("base.yaml", "production.yaml", "local.yaml")
//
// Mappings merge key by key, preserving the key order of earlier documents
// and appending new keys in the order the override introduces them.
// Sequences merge element by element, with any extra override elements
// appended; a sequence never shrinks. Scalars, and any pair of values with
// mismatched shapes, are replaced outright by the override. A document that
// omits a key, or sets it to null, leaves the underlying value untouched.
//
// Documents which cannot be loaded or parsed are skipped, so a missing
// override file is not an error. Where documents come from is up to the
// caller: any Loader works, with fs.FS and HTTP based loaders provided.
//
// The merged tree can also be decoded into a struct via the "config" tag:
//
//	type Config struct {
//		Addr    string        `config:"addr"`
//		Timeout time.Duration `config:"timeout"`
//	}
//
//	var cfg Config
//	err := merger.Unmarshal(&cfg, "base.yaml", "production.yaml")
package stratum
