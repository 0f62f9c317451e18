// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-settings-keeper/models"
)

// Loader resolves the application configuration exactly once and hands the
// same instance to every caller afterwards. A zero-value Loader reads its
// Options from the environment on first use; construct one with NewLoader
// to inject explicit options instead.
//
// Load is safe for concurrent use: concurrent first callers trigger a
// single resolution pass and all of them observe the same fully constructed
// configuration or the same error. There is no invalidation — a process
// restart is the only reset.
type Loader struct {
	opts    Options
	optsSet bool

	once   sync.Once
	loaded atomic.Bool
	cfg    *models.AppConfig
	infos  []SourceInfo
	err    error
}

// NewLoader returns a Loader resolving with the given options.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts, optsSet: true}
}

// Load returns the resolved, validated configuration, running the full
// source pipeline on the first call and the cached result on every call
// after that. The returned configuration is read-only and safe for
// unsynchronized concurrent reads.
func (l *Loader) Load() (*models.AppConfig, error) {
	l.once.Do(func() {
		defer l.loaded.Store(true)

		opts := l.opts
		if !l.optsSet {
			if opts, l.err = OptionsFromEnv(); l.err != nil {
				return
			}
		} else if opts, l.err = opts.normalized(); l.err != nil {
			return
		}

		l.cfg, l.infos, l.err = resolve(opts)
	})

	return l.cfg, l.err
}

// Sources reports the configuration sources checked during resolution and
// whether each was available. It returns nil until the first Load has
// completed, so racing callers never observe a partially written list.
func (l *Loader) Sources() []SourceInfo {
	if !l.loaded.Load() {
		return nil
	}
	return slices.Clone(l.infos)
}

var defaultLoader Loader

// GetConfig resolves the process-wide configuration through a shared
// default Loader. The first call performs the full pipeline; every
// subsequent call returns the identical cached instance without re-reading
// any source.
func GetConfig() (*models.AppConfig, error) {
	return defaultLoader.Load()
}

// Sources reports source availability for the process-wide Loader.
func Sources() []SourceInfo {
	return defaultLoader.Sources()
}
