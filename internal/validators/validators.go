// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the named value validators that schema fields
// attach through their validate tag.
//
// A validator receives the coerced field value plus the resolution
// Context and returns a descriptive error on failure. Validators are looked
// up by spec string, either a bare name ("nonempty", "file_exists") or a
// parameterized form ("oneof=json console").
package validators

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

// Context carries resolution-wide settings a validator may need.
type Context struct {
	// BaseDir is the directory relative filesystem paths resolve against.
	BaseDir string
}

// Func validates one coerced field value.
type Func func(ctx Context, value any) error

// Lookup resolves a validate-tag spec to its validator. The spec is either
// a registered name or "oneof=" followed by space-separated allowed values.
func Lookup(spec string) (Func, error) {
	if args, ok := strings.CutPrefix(spec, "oneof="); ok {
		return oneOf(strings.Fields(args)), nil
	}

	fn, ok := registry[spec]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, spec)
	}
	return fn, nil
}

var registry = map[string]Func{
	"nonempty":    nonEmpty,
	"port":        port,
	"file_exists": fileExists,
	"dir_exists":  dirExists,
	"log_level":   logLevel,
}

func nonEmpty(_ Context, value any) error {
	s, err := cast.ToStringE(value)
	if err != nil || strings.TrimSpace(s) == "" {
		return ErrEmptyValue
	}
	return nil
}

func port(_ Context, value any) error {
	p, err := cast.ToIntE(value)
	if err != nil || p < 1 || p > 65535 {
		return ErrInvalidPort
	}
	return nil
}

func fileExists(ctx Context, value any) error {
	path := resolvePath(ctx, value)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return nil
}

func dirExists(ctx Context, value any) error {
	path := resolvePath(ctx, value)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrDirNotFound, path)
	}
	return nil
}

func logLevel(_ Context, value any) error {
	s, err := cast.ToStringE(value)
	if err != nil {
		return ErrInvalidLogLevel
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(s)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
	return nil
}

func oneOf(allowed []string) Func {
	return func(_ Context, value any) error {
		s, err := cast.ToStringE(value)
		if err != nil {
			return fmt.Errorf("%w: one of %s", ErrValueNotAllowed, strings.Join(allowed, ", "))
		}
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("%w: one of %s", ErrValueNotAllowed, strings.Join(allowed, ", "))
	}
}

func resolvePath(ctx Context, value any) string {
	path := cast.ToString(value)
	if path == "" || filepath.IsAbs(path) || ctx.BaseDir == "" {
		return path
	}
	return filepath.Join(ctx.BaseDir, path)
}
