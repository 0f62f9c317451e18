package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-settings-keeper/internal/tree"
)

// SecretsDir reads a Docker-style secrets directory where each regular
// file's name is a flat delimiter-nested key and its trimmed contents are
// the value. Highest precedence of all sources.
type SecretsDir struct {
	Dir       string
	Delimiter string
}

func NewSecretsDir(dir, delimiter string) *SecretsDir {
	return &SecretsDir{Dir: dir, Delimiter: delimiter}
}

func (s *SecretsDir) Name() string { return "secrets" }

func (s *SecretsDir) Rank() Rank { return RankSecretsDir }

func (s *SecretsDir) Read() (tree.Tree, error) {
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return tree.Tree{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading secrets directory %s: %w", s.Dir, err)
	}

	flat := make(map[string]string, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("error reading secret file %s: %w", entry.Name(), err)
		}
		flat[entry.Name()] = strings.TrimSpace(string(data))
	}

	return tree.Expand(flat, s.Delimiter), nil
}
