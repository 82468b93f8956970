// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package merge implements a deep merge over parsed YAML nodes.
//
// The merge is an override: the source node represents a layer applied on
// top of the target node. Mappings merge key by key, sequences merge
// positionally, and everything else is replaced by the source value. The
// target node is mutated in place and never shrinks — a mapping keeps keys
// the source does not mention and a sequence keeps elements beyond the
// source's length.
package merge

import "gopkg.in/yaml.v3"

// Merge combines source into target, where source overrides target.
//
// The returned bool reports whether the caller must overwrite its own
// reference to target with the returned node. A mapping or sequence can
// only be replaced in its parent's slot by the parent itself, so whenever
// the two nodes cannot be merged in place (scalars, mismatched kinds or an
// absent target) Merge hands the source back and leaves the substitution
// to the caller. When the bool is false target has already been deepened
// in place.
//
// An absent source (nil, zero or an explicit null) never changes target:
// an override document that omits or nulls a key must not erase the value
// underneath it.
func Merge(target, source *yaml.Node) (*yaml.Node, bool) {
	switch {
	case absent(source):
		return target, false
	case absent(target):
		return source, true
	case target.Kind == yaml.MappingNode && source.Kind == yaml.MappingNode:
		mergeMappings(target, source)
		return target, false
	case target.Kind == yaml.SequenceNode && source.Kind == yaml.SequenceNode:
		mergeSequences(target, source)
		return target, false
	default:
		return source, true
	}
}

func absent(n *yaml.Node) bool {
	if n == nil || n.Kind == 0 {
		return true
	}
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// mergeMappings walks the source entries in their own order. Entries
// missing from target are appended after the existing ones, so target's
// original key order is preserved and new keys follow in source order.
func mergeMappings(target, source *yaml.Node) {
	for i := 0; i+1 < len(source.Content); i += 2 {
		key, value := source.Content[i], source.Content[i+1]

		j := findKey(target, key.Value)
		if j < 0 {
			target.Content = append(target.Content, key, value)
			continue
		}

		merged, replace := Merge(target.Content[j+1], value)
		if replace {
			target.Content[j+1] = merged
		}
	}
}

// findKey returns the content index of the key node matching key, or -1.
// Mapping content alternates key and value nodes.
func findKey(m *yaml.Node, key string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i
		}
	}
	return -1
}

// mergeSequences merges the paired prefix element-wise and appends any
// source tail beyond target's length. The prefix loop is bounded by the
// shorter of the two sequences: when source is shorter, target's excess
// elements are left untouched.
func mergeSequences(target, source *yaml.Node) {
	n := min(len(target.Content), len(source.Content))
	for i := 0; i < n; i++ {
		merged, replace := Merge(target.Content[i], source.Content[i])
		if replace {
			target.Content[i] = merged
		}
	}
	if len(source.Content) > len(target.Content) {
		target.Content = append(target.Content, source.Content[len(target.Content):]...)
	}
}
