package source

import (
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-settings-keeper/internal/tree"
)

// Env reads the process environment. Only variables whose first delimiter
// segment matches a recognized top-level schema name are considered part of
// the configuration; everything else in the environment is ignored.
type Env struct {
	Roots     []string
	Delimiter string
}

func NewEnv(roots []string, delimiter string) *Env {
	return &Env{Roots: roots, Delimiter: delimiter}
}

func (e *Env) Name() string { return "environment" }

func (e *Env) Rank() Rank { return RankEnv }

func (e *Env) Read() (tree.Tree, error) {
	flat := make(map[string]string)
	for _, pair := range os.Environ() {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		root, _, _ := strings.Cut(key, e.Delimiter)
		if slices.Contains(e.Roots, root) {
			flat[key] = value
		}
	}

	return tree.Expand(flat, e.Delimiter), nil
}
