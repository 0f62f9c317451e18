package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-settings-keeper/internal/tree"
)

// YAMLFile reads a nested YAML document matching the schema shape exactly;
// its keys are never delimiter-expanded. An absent file contributes an
// empty tree; malformed YAML is a read failure.
type YAMLFile struct {
	Path string
}

func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{Path: path}
}

func (y *YAMLFile) Name() string { return "yaml" }

func (y *YAMLFile) Rank() Rank { return RankYAMLFile }

func (y *YAMLFile) Read() (tree.Tree, error) {
	data, err := os.ReadFile(y.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return tree.Tree{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading yaml file %s: %w", y.Path, err)
	}

	var t tree.Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("error decoding yaml file %s: %w", y.Path, err)
	}
	if t == nil {
		t = tree.Tree{}
	}

	return t, nil
}
