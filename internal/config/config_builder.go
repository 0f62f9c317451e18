package config

import (
	"fmt"
	"os"
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/MKhiriev/go-settings-keeper/internal/schema"
	"github.com/MKhiriev/go-settings-keeper/internal/source"
	"github.com/MKhiriev/go-settings-keeper/internal/tree"
	"github.com/MKhiriev/go-settings-keeper/internal/validators"
	"github.com/MKhiriev/go-settings-keeper/models"
)

// sourceBuilder assembles the ordered source list for one resolution pass
// and records availability information for each source as it goes.
type sourceBuilder struct {
	opts    Options
	root    *schema.Node
	sources []source.Source
	infos   []SourceInfo
}

func newSourceBuilder(opts Options, root *schema.Node) *sourceBuilder {
	return &sourceBuilder{
		opts: opts,
		root: root,
	}
}

func (b *sourceBuilder) withSecretsDir() *sourceBuilder {
	b.sources = append(b.sources, source.NewSecretsDir(b.opts.SecretsDir, b.opts.Delimiter))
	b.infos = append(b.infos, SourceInfo{
		Type:        "secrets",
		Path:        b.opts.SecretsDir,
		Available:   dirExists(b.opts.SecretsDir),
		Description: "Docker secrets directory: " + b.opts.SecretsDir,
	})
	return b
}

func (b *sourceBuilder) withEnv() *sourceBuilder {
	b.sources = append(b.sources, source.NewEnv(schema.TopLevelNames(b.root), b.opts.Delimiter))
	b.infos = append(b.infos, SourceInfo{
		Type:        "environment",
		Path:        "system environment",
		Available:   true,
		Description: "System environment variables",
	})
	return b
}

func (b *sourceBuilder) withDotenv() *sourceBuilder {
	b.sources = append(b.sources, source.NewDotenv(b.opts.DotenvPath, b.opts.Delimiter))
	b.infos = append(b.infos, SourceInfo{
		Type:        "dotenv",
		Path:        b.opts.DotenvPath,
		Available:   fileExists(b.opts.DotenvPath),
		Description: "Dotenv file: " + b.opts.DotenvPath,
	})
	return b
}

func (b *sourceBuilder) withYAML() *sourceBuilder {
	b.sources = append(b.sources, source.NewYAMLFile(b.opts.YAMLPath))
	b.infos = append(b.infos, SourceInfo{
		Type:        "yaml",
		Path:        b.opts.YAMLPath,
		Available:   fileExists(b.opts.YAMLPath),
		Description: "YAML configuration file: " + b.opts.YAMLPath,
	})
	return b
}

func (b *sourceBuilder) withDefaults() *sourceBuilder {
	b.sources = append(b.sources, source.NewDefaults(schema.DefaultsTree(b.root)))
	b.infos = append(b.infos, SourceInfo{
		Type:        "defaults",
		Path:        "schema declaration",
		Available:   true,
		Description: "Default values declared on the schema",
	})
	return b
}

// merge reads every source and folds the trees by rank. Read failures from
// all sources are aggregated before aborting, so one report names every
// broken source.
func (b *sourceBuilder) merge() (tree.Tree, error) {
	var readErr *multierror.Error
	ranked := make([]tree.Ranked, 0, len(b.sources))

	for i, src := range b.sources {
		t, err := src.Read()
		if err != nil {
			readErr = multierror.Append(readErr, &SourceReadError{
				Source: src.Name(),
				Path:   b.infos[i].Path,
				Err:    err,
			})
			continue
		}
		ranked = append(ranked, tree.Ranked{Tree: t, Rank: int(src.Rank())})
	}

	if err := readErr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return tree.MergeRanked(ranked)
}

// resolve runs the full pipeline once: describe the schema, read and merge
// every ranked source, then validate and populate the typed configuration.
func resolve(opts Options) (*models.AppConfig, []SourceInfo, error) {
	root, err := schema.Describe(reflect.TypeOf(models.AppConfig{}))
	if err != nil {
		return nil, nil, fmt.Errorf("error describing configuration schema: %w", err)
	}

	builder := newSourceBuilder(opts, root).
		withSecretsDir().
		withEnv().
		withDotenv().
		withYAML().
		withDefaults()

	merged, err := builder.merge()
	if err != nil {
		return nil, builder.infos, err
	}

	cfg := &models.AppConfig{}
	if err := schema.Apply(merged, cfg, root, validators.Context{BaseDir: opts.BaseDir}); err != nil {
		return nil, builder.infos, err
	}

	return cfg, builder.infos, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
