package character

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"atlas-characters/inventory"
	"atlas-characters/item"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const EnvInventoryMaxWeight = "INVENTORY_MAX_WEIGHT"

var (
	ErrNotFound      = errors.New("character not found")
	ErrAlreadyExists = errors.New("character already exists")
)

// Config holds the settings applied to newly created characters
type Config struct {
	Catalog   *item.Catalog
	MaxWeight int
}

// ConfigFromEnv reads INVENTORY_MAX_WEIGHT, defaulting to the standard inventory capacity
func ConfigFromEnv(l logrus.FieldLogger, catalog *item.Catalog) Config {
	maxWeight := inventory.DefaultMaxWeight
	if v := os.Getenv(EnvInventoryMaxWeight); v != "" {
		if mw, err := strconv.Atoi(v); err == nil && mw >= 0 {
			maxWeight = mw
		} else {
			l.WithField("value", v).Warnf("Invalid %s, using default of %d.", EnvInventoryMaxWeight, maxWeight)
		}
	}
	return Config{Catalog: catalog, MaxWeight: maxWeight}
}

type key struct {
	tenantId    uuid.UUID
	characterId uint32
}

// Registry holds the live characters of every tenant. All access goes through its lock, which
// gives the frame loop and the command handlers a single logical thread of control.
type Registry struct {
	mu         sync.Mutex
	config     Config
	characters map[key]*Character
}

func NewRegistry(config Config) *Registry {
	if config.Catalog == nil {
		config.Catalog = item.DefaultCatalog()
	}
	return &Registry{
		config:     config,
		characters: make(map[key]*Character),
	}
}

func (r *Registry) Config() Config {
	return r.config
}

// Add registers c, failing if a character with the same tenant and ID exists
func (r *Registry) Add(c *Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := c.Tenant()
	k := key{tenantId: t.Id(), characterId: c.Id()}
	if _, ok := r.characters[k]; ok {
		return fmt.Errorf("character %d: %w", c.Id(), ErrAlreadyExists)
	}
	r.characters[k] = c
	return nil
}

func (r *Registry) Remove(tenantId uuid.UUID, characterId uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{tenantId: tenantId, characterId: characterId}
	if _, ok := r.characters[k]; !ok {
		return fmt.Errorf("character %d: %w", characterId, ErrNotFound)
	}
	delete(r.characters, k)
	return nil
}

// With runs f against the character while holding the registry lock
func (r *Registry) With(tenantId uuid.UUID, characterId uint32, f func(c *Character) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.characters[key{tenantId: tenantId, characterId: characterId}]
	if !ok {
		return fmt.Errorf("character %d: %w", characterId, ErrNotFound)
	}
	return f(c)
}

// ForEach runs f against every character while holding the registry lock
func (r *Registry) ForEach(f func(c *Character)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.characters {
		f(c)
	}
}

func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.characters)
}
