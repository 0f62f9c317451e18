// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tree implements the untyped nested mapping produced by every
// configuration source, together with the delimiter expansion of flat keys
// and the rank-ordered deep merge that folds all sources into one tree.
package tree

import (
	"fmt"
	"slices"
	"strings"
)

// Tree is an untyped nested mapping from key to scalar, slice, or child
// Tree. One Tree is produced per configuration source before validation.
type Tree = map[string]any

// Expand converts a flat mapping with delimiter-nested keys (A__B__C style)
// into a Tree. Empty segments produced by consecutive delimiters or a
// delimiter at either end of a key are kept as literal empty-string keys.
//
// When expansion would place a scalar where a subtree already exists (or the
// reverse), the later key wins wholesale at that path. Keys are applied in
// sorted order so the outcome is deterministic.
func Expand(flat map[string]string, delim string) Tree {
	out := Tree{}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		segments := strings.Split(key, delim)
		node := out
		for _, segment := range segments[:len(segments)-1] {
			child, ok := node[segment].(Tree)
			if !ok {
				child = Tree{}
				node[segment] = child
			}
			node = child
		}
		node[segments[len(segments)-1]] = flat[key]
	}

	return out
}

// Flatten is the inverse of Expand: it walks t depth-first and joins nested
// keys with delim. Scalars render in dotenv-friendly form: slices join with
// commas, booleans lowercase, nil becomes "None". Expanding the result with
// the same delimiter reproduces t for any tree of string scalars whose key
// segments do not contain the delimiter.
func Flatten(t Tree, delim string) map[string]string {
	out := make(map[string]string)
	flattenInto(out, t, nil, delim)
	return out
}

// flattenInto carries the key path as segments and only joins at a leaf, so
// empty-string segments survive as literal keys instead of vanishing into
// the prefix.
func flattenInto(out map[string]string, t Tree, path []string, delim string) {
	for key, value := range t {
		segments := append(path[:len(path):len(path)], key)
		flat := strings.Join(segments, delim)

		switch v := value.(type) {
		case Tree:
			flattenInto(out, v, segments, delim)
		case []any:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			out[flat] = strings.Join(parts, ",")
		case []string:
			out[flat] = strings.Join(v, ",")
		case nil:
			out[flat] = "None"
		case bool:
			if v {
				out[flat] = "true"
			} else {
				out[flat] = "false"
			}
		case string:
			out[flat] = v
		default:
			out[flat] = fmt.Sprint(v)
		}
	}
}

// Lookup descends t along path and returns the value at its end.
func Lookup(t Tree, path ...string) (any, bool) {
	var current any = t
	for _, segment := range path {
		node, ok := current.(Tree)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
