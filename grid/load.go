package grid

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// document is the YAML layout: values[i][j] sits at (lons[j], lats[i]).
type document struct {
	Lons   []float64   `yaml:"lons"`
	Lats   []float64   `yaml:"lats"`
	Values [][]float64 `yaml:"values"`
}

// LoadYAML decodes a {lons, lats, values} document into a Grid.
func LoadYAML(r io.Reader) (*Grid, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, eris.Wrap(err, "grid: decode yaml")
	}
	return FromAxes(doc.Lons, doc.Lats, doc.Values)
}

// LoadFile opens path and dispatches on its extension: .yaml and .yml are
// decoded by LoadYAML, .shp by ReadShapefile using field for values.
func LoadFile(path, field string) (*Grid, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "grid: open %s", path)
		}
		defer func() { _ = f.Close() }()
		return LoadYAML(f)
	case ".shp":
		return ReadShapefile(path, field)
	default:
		return nil, eris.Wrapf(ErrFormat, "extension %q", ext)
	}
}
