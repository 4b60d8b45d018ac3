// Package catalog holds the static activity registry and the weekly plan.
// Run descriptors are resolved once, when the catalog is loaded.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/limbo/placebetween/pkg/entity"
	"gopkg.in/yaml.v3"
)

//go:embed data/activities.yaml
var defaultCatalog []byte

type activityDef struct {
	ID          string `yaml:"id"`
	Phase       string `yaml:"phase"`
	Title       string `yaml:"title"`
	Branch      string `yaml:"branch"`
	Duration    *int   `yaml:"duration"`
	Description string `yaml:"description"`
	Reason      string `yaml:"reason"`
	Image       string `yaml:"image"`
	Priority    bool   `yaml:"priority"`
	Run         any    `yaml:"run"`
}

type catalogFile struct {
	Day   []activityDef `yaml:"day"`
	Night []activityDef `yaml:"night"`
}

// Catalog is immutable after load and safe for concurrent reads.
type Catalog struct {
	byPhase map[entity.Phase][]*entity.Activity
	byID    map[string]*entity.Activity
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	c := &Catalog{
		byPhase: make(map[entity.Phase][]*entity.Activity, 2),
		byID:    make(map[string]*entity.Activity),
	}
	if err := c.add(entity.PhaseDay, file.Day); err != nil {
		return nil, err
	}
	if err := c.add(entity.PhaseNight, file.Night); err != nil {
		return nil, err
	}
	return c, nil
}

// New builds a catalog from already resolved activities, keeping their order.
func New(activities ...*entity.Activity) (*Catalog, error) {
	c := &Catalog{
		byPhase: make(map[entity.Phase][]*entity.Activity, 2),
		byID:    make(map[string]*entity.Activity),
	}
	for _, a := range activities {
		if err := c.insert(a); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(section entity.Phase, defs []activityDef) error {
	for _, d := range defs {
		if d.Phase != "" && entity.Phase(d.Phase) != section {
			return fmt.Errorf("activity %q declares phase %q inside %q section", d.ID, d.Phase, section)
		}
		a := &entity.Activity{
			ID:          d.ID,
			Phase:       section,
			Title:       d.Title,
			Branch:      d.Branch,
			Duration:    d.Duration,
			Description: d.Description,
			Reason:      d.Reason,
			Image:       d.Image,
			Priority:    d.Priority,
			Run:         entity.NewRunDescriptor(d.Run),
		}
		if err := c.insert(a); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) insert(a *entity.Activity) error {
	if a == nil || a.ID == "" {
		return errors.New("activity without id")
	}
	if _, err := entity.ParsePhase(string(a.Phase)); err != nil {
		return fmt.Errorf("activity %q: %w", a.ID, err)
	}
	if _, dup := c.byID[a.ID]; dup {
		return fmt.Errorf("duplicate activity id %q", a.ID)
	}
	c.byID[a.ID] = a
	c.byPhase[a.Phase] = append(c.byPhase[a.Phase], a)
	return nil
}

// Phase returns the activities of phase in catalog order. The slice is a copy.
func (c *Catalog) Phase(p entity.Phase) []*entity.Activity {
	list := c.byPhase[p]
	out := make([]*entity.Activity, len(list))
	copy(out, list)
	return out
}

func (c *Catalog) Get(id string) (*entity.Activity, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// All returns day activities followed by night activities.
func (c *Catalog) All() []*entity.Activity {
	out := make([]*entity.Activity, 0, len(c.byID))
	for _, p := range entity.Phases {
		out = append(out, c.byPhase[p]...)
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.byID)
}
