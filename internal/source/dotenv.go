package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/subosito/gotenv"

	"github.com/MKhiriev/go-settings-keeper/internal/tree"
)

// Dotenv reads newline-delimited KEY=value pairs from a dotenv file, with
// optional quoting as understood by gotenv. An absent file contributes an
// empty tree; malformed content is a read failure.
type Dotenv struct {
	Path      string
	Delimiter string
}

func NewDotenv(path, delimiter string) *Dotenv {
	return &Dotenv{Path: path, Delimiter: delimiter}
}

func (d *Dotenv) Name() string { return "dotenv" }

func (d *Dotenv) Rank() Rank { return RankDotenv }

func (d *Dotenv) Read() (tree.Tree, error) {
	f, err := os.Open(d.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return tree.Tree{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening dotenv file %s: %w", d.Path, err)
	}
	defer f.Close()

	pairs, err := gotenv.StrictParse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing dotenv file %s: %w", d.Path, err)
	}

	return tree.Expand(pairs, d.Delimiter), nil
}
