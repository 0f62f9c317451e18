// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export serializes the resolved configuration to YAML and dotenv
// formats. Every export path goes through the masked structured dump, so
// sensitive values can never reach an output file in plaintext.
package export

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-settings-keeper/internal/schema"
	"github.com/MKhiriev/go-settings-keeper/internal/tree"
	"github.com/MKhiriev/go-settings-keeper/models"
)

// delimiter joins nested keys in the flattened dotenv form, mirroring the
// nesting delimiter used by the flat configuration sources.
const delimiter = "__"

// Dump converts the resolved configuration into a nested mapping keyed by
// the declared source names, with every secret already replaced by its
// redacted form. It is the single masking point all exporters build on.
func Dump(cfg *models.AppConfig) (tree.Tree, error) {
	root, err := schema.Describe(reflect.TypeOf(*cfg))
	if err != nil {
		return nil, fmt.Errorf("error describing configuration schema: %w", err)
	}
	return dumpGroup(reflect.ValueOf(*cfg), root), nil
}

func dumpGroup(structVal reflect.Value, group *schema.Node) tree.Tree {
	out := tree.Tree{}
	for _, child := range group.Children {
		field := child.FieldOf(structVal)
		if child.Group {
			out[child.Name] = dumpGroup(field, child)
			continue
		}
		out[child.Name] = dumpLeaf(field)
	}
	return out
}

func dumpLeaf(field reflect.Value) any {
	if secret, ok := field.Interface().(models.Secret); ok {
		return secret.String()
	}
	return field.Interface()
}

// WriteYAML writes the masked configuration dump as a YAML document.
func WriteYAML(w io.Writer, cfg *models.AppConfig) error {
	dump, err := Dump(cfg)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("error encoding configuration to yaml: %w", err)
	}
	return enc.Close()
}

// DumpYAMLFile writes the masked configuration dump to a YAML file.
func DumpYAMLFile(path string, cfg *models.AppConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating yaml dump file: %w", err)
	}
	defer f.Close()

	return WriteYAML(f, cfg)
}

// DotenvOptions controls the dotenv rendering.
type DotenvOptions struct {
	// KeepRedacted keeps redacted secret entries in the output. By default
	// they are dropped entirely since the redaction token is useless as a
	// value to load back.
	KeepRedacted bool
}

// WriteDotenv writes the masked configuration flattened to KEY=value lines,
// nested keys joined with the delimiter and sorted for stable output.
// Values containing spaces are single-quoted.
func WriteDotenv(w io.Writer, cfg *models.AppConfig, opts DotenvOptions) error {
	dump, err := Dump(cfg)
	if err != nil {
		return err
	}

	flat := tree.Flatten(dump, delimiter)
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := flat[key]
		if value == models.RedactionToken && !opts.KeepRedacted {
			continue
		}
		if strings.Contains(value, " ") {
			value = "'" + value + "'"
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, value); err != nil {
			return fmt.Errorf("error writing dotenv dump: %w", err)
		}
	}

	return nil
}

// DumpDotenvFile writes the masked, flattened configuration to a dotenv
// file, dropping redacted secret entries.
func DumpDotenvFile(path string, cfg *models.AppConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating dotenv dump file: %w", err)
	}
	defer f.Close()

	return WriteDotenv(f, cfg, DotenvOptions{})
}
