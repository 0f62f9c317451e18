package source

import "github.com/MKhiriev/go-settings-keeper/internal/tree"

// Defaults wraps the tree derived from the schema's declared default
// values. It is already nested in schema shape and has the lowest
// precedence of all sources.
type Defaults struct {
	Tree tree.Tree
}

func NewDefaults(t tree.Tree) *Defaults {
	return &Defaults{Tree: t}
}

func (d *Defaults) Name() string { return "defaults" }

func (d *Defaults) Rank() Rank { return RankDefaults }

func (d *Defaults) Read() (tree.Tree, error) {
	return d.Tree, nil
}
