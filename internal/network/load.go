package network

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
)

// delhiYAML is the reference map: 22 stations of the Delhi metro core.
//
//go:embed delhi.yaml
var delhiYAML []byte

// Table is the on-disk network description. Station ids are list indices.
type Table struct {
	Stations []string     `yaml:"stations"`
	Edges    []model.Edge `yaml:"edges"`
}

func (t Table) Build() (*Graph, error) {
	return Build(t.Stations, t.Edges)
}

// Decode parses a YAML network table.
func Decode(r io.Reader) (Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return Table{}, fmt.Errorf("decode network table: %w", err)
	}
	if len(t.Stations) == 0 {
		return Table{}, fmt.Errorf("decode network table: no stations")
	}
	return t, nil
}

// Load parses and builds a network from YAML.
func Load(r io.Reader) (*Graph, error) {
	t, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return t.Build()
}

func LoadFile(path string) (*Graph, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	return t.Build()
}

func ReadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("could not open network file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// DefaultTable returns the embedded reference map.
func DefaultTable() Table {
	var t Table
	if err := yaml.Unmarshal(delhiYAML, &t); err != nil {
		panic(fmt.Sprintf("embedded network table: %v", err))
	}
	return t
}

// Default builds the embedded reference map.
func Default() *Graph {
	g, err := DefaultTable().Build()
	if err != nil {
		panic(fmt.Sprintf("embedded network table: %v", err))
	}
	return g
}
