package catalog

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cognisync/go-engine/internal/signal"
)

// #region file-format

// catalogFile is the on-disk YAML shape of a catalog.
type catalogFile struct {
	Tactics  []tacticEntry       `yaml:"tactics"`
	Crisis   map[string][]string `yaml:"crisis"`
	Defaults []string            `yaml:"defaults"`
}

type tacticEntry struct {
	Emotion        string   `yaml:"emotion"`
	Attention      string   `yaml:"attention"`
	StressZone     string   `yaml:"stress_zone"`
	EngagementZone string   `yaml:"engagement_zone"`
	Variants       []string `yaml:"variants"`
}

// #endregion file-format

// #region load

// Load reads and validates a catalog from a YAML file. The loaded catalog
// replaces the built-in one wholesale.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	c := &Catalog{
		tactics:  make(map[Key]Entry, len(file.Tactics)),
		crisis:   make(map[CrisisTag]Entry, len(file.Crisis)),
		defaults: file.Defaults,
	}
	for _, t := range file.Tactics {
		k := Key{
			Emotion:        signal.Emotion(t.Emotion),
			Attention:      signal.Attention(t.Attention),
			StressZone:     signal.Zone(t.StressZone),
			EngagementZone: signal.Zone(t.EngagementZone),
		}
		if _, dup := c.tactics[k]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate key %s", path, k)
		}
		c.tactics[k] = Entry{Variants: t.Variants}
	}
	for tag, variants := range file.Crisis {
		c.crisis[CrisisTag(tag)] = Entry{Variants: variants}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// #endregion load

// #region export

// WriteYAML serializes the catalog in the file format Load accepts, with
// tactic keys in a stable sorted order.
func (c *Catalog) WriteYAML(w io.Writer) error {
	keys := make([]Key, 0, len(c.tactics))
	for k := range c.tactics {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	file := catalogFile{
		Tactics:  make([]tacticEntry, 0, len(keys)),
		Crisis:   make(map[string][]string, len(c.crisis)),
		Defaults: c.defaults,
	}
	for _, k := range keys {
		file.Tactics = append(file.Tactics, tacticEntry{
			Emotion:        string(k.Emotion),
			Attention:      string(k.Attention),
			StressZone:     string(k.StressZone),
			EngagementZone: string(k.EngagementZone),
			Variants:       c.tactics[k].Variants,
		})
	}
	for tag, e := range c.crisis {
		file.Crisis[string(tag)] = e.Variants
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

// #endregion export
