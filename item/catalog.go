package item

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvCatalogPath names the environment variable holding the item catalog file
const EnvCatalogPath = "ITEM_CATALOG_PATH"

var ErrNotFound = errors.New("item not found")

// Catalog holds the item definitions known to the service
type Catalog struct {
	items map[uint32]Model
}

type catalogFile struct {
	Items []catalogEntry `yaml:"items"`
}

type catalogEntry struct {
	Id     uint32 `yaml:"id"`
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// NewCatalog creates a catalog from the given models, rejecting duplicate IDs
func NewCatalog(models ...Model) (*Catalog, error) {
	c := &Catalog{items: make(map[uint32]Model, len(models))}
	for _, m := range models {
		if _, ok := c.items[m.Id()]; ok {
			return nil, fmt.Errorf("duplicate item id %d", m.Id())
		}
		c.items[m.Id()] = m
	}
	return c, nil
}

// DefaultCatalog returns the catalog used when no catalog file is configured
func DefaultCatalog() *Catalog {
	m, _ := NewBuilder(0, "TEST").SetWeight(5).Build()
	c, _ := NewCatalog(m)
	return c
}

// ParseCatalog decodes a YAML catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode item catalog: %w", err)
	}

	models := make([]Model, 0, len(f.Items))
	for _, e := range f.Items {
		m, err := NewBuilder(e.Id, e.Name).SetWeight(e.Weight).Build()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", e.Id, err)
		}
		models = append(models, m)
	}
	return NewCatalog(models...)
}

// LoadCatalog reads the catalog named by ITEM_CATALOG_PATH, falling back to DefaultCatalog
func LoadCatalog(l logrus.FieldLogger) (*Catalog, error) {
	path := os.Getenv(EnvCatalogPath)
	if path == "" {
		l.Info("No item catalog configured, using default catalog.")
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	l.WithFields(logrus.Fields{"path": path, "items": c.Size()}).Info("Loaded item catalog.")
	return c, nil
}

// ById returns the item definition with the given ID
func (c *Catalog) ById(id uint32) (Model, error) {
	m, ok := c.items[id]
	if !ok {
		return Model{}, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return m, nil
}

// Size returns the number of item definitions
func (c *Catalog) Size() int {
	return len(c.items)
}

// All returns every item definition ordered by ID
func (c *Catalog) All() []Model {
	results := make([]Model, 0, len(c.items))
	for _, m := range c.items {
		results = append(results, m)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Id() < results[j].Id()
	})
	return results
}
