// Package breeds expone el catálogo embebido de razas reconocidas. Lo usan el
// prompt de identificación y el endpoint de consulta.
package breeds

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"livestock-registry/internal/domain/registrations"
)

//go:embed breeds.yaml
var catalogYAML []byte

type Breed struct {
	Name      string                `yaml:"name" json:"name"`
	Species   registrations.Species `yaml:"-" json:"species"`
	Origin    string                `yaml:"origin" json:"origin"`
	MilkYield string                `yaml:"milkYield" json:"milkYield"`
	Traits    []string              `yaml:"traits" json:"traits"`
}

type Catalog struct {
	bySpecies map[registrations.Species][]Breed
}

type catalogFile struct {
	Cattle  []Breed `yaml:"cattle"`
	Buffalo []Breed `yaml:"buffalo"`
}

// Parse lee un catálogo en YAML. Nombres repetidos dentro de una especie son error.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse breeds catalog: %w", err)
	}

	c := &Catalog{bySpecies: map[registrations.Species][]Breed{}}
	for species, list := range map[registrations.Species][]Breed{
		registrations.SpeciesCattle:  f.Cattle,
		registrations.SpeciesBuffalo: f.Buffalo,
	} {
		seen := map[string]bool{}
		out := make([]Breed, 0, len(list))
		for _, b := range list {
			b.Name = strings.TrimSpace(b.Name)
			if b.Name == "" {
				return nil, fmt.Errorf("breeds catalog: empty name under %s", species)
			}
			key := strings.ToLower(b.Name)
			if seen[key] {
				return nil, fmt.Errorf("breeds catalog: duplicate %q under %s", b.Name, species)
			}
			seen[key] = true
			b.Species = species
			out = append(out, b)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		c.bySpecies[species] = out
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default devuelve el catálogo embebido. El YAML viaja con el binario, así
// que un error de parseo es un bug de build.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(catalogYAML)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// List devuelve las razas de la especie; species vacío = todas.
func (c *Catalog) List(species registrations.Species) []Breed {
	if species != "" {
		return append([]Breed(nil), c.bySpecies[species]...)
	}
	out := make([]Breed, 0)
	for _, s := range []registrations.Species{registrations.SpeciesCattle, registrations.SpeciesBuffalo} {
		out = append(out, c.bySpecies[s]...)
	}
	return out
}

// Names es la lista que se le pasa al modelo como razas válidas.
func (c *Catalog) Names(species registrations.Species) []string {
	list := c.List(species)
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.Name)
	}
	return out
}

func (c *Catalog) Lookup(name string) (Breed, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, b := range c.List("") {
		if strings.ToLower(b.Name) == key {
			return b, true
		}
	}
	return Breed{}, false
}
