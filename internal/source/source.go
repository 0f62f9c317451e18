// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source implements the ranked configuration sources.
//
// Every source produces an untyped nested tree of raw values and carries a
// fixed precedence rank. An absent backing file or directory is not an
// error — the source simply contributes an empty tree; only real I/O
// failures and malformed content are reported.
package source

import "github.com/MKhiriev/go-settings-keeper/internal/tree"

// Rank is the fixed precedence of a configuration source.
// Lower numeric rank means higher precedence.
type Rank int

const (
	RankSecretsDir Rank = iota
	RankEnv
	RankDotenv
	RankYAMLFile
	RankDefaults
)

// Source is one configuration source kind.
type Source interface {
	// Name identifies the source in errors and tracking output.
	Name() string

	// Rank returns the source's fixed precedence rank.
	Rank() Rank

	// Read produces the source's raw tree. An absent source yields an
	// empty tree with a nil error.
	Read() (tree.Tree, error)
}
