// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the application configuration from all ranked
// sources, validates it against the declared schema, and caches the result
// for the lifetime of the process.
//
// Configuration is assembled from the following sources in priority order
// (earlier sources override later ones at each nested key):
//  1. Docker secrets directory
//  2. Environment variables
//  3. Dotenv file
//  4. YAML file
//  5. Schema defaults
//
// The main entry points are [Loader.Load] for injected loaders and the
// process-wide [GetConfig]. Resolution runs at most once per Loader; every
// caller observes the same fully constructed [models.AppConfig] or the same
// error, and nothing is re-read afterwards.
package config
