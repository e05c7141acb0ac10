package catalog

import (
	"fmt"

	"github.com/cognisync/go-engine/internal/signal"
)

// #region keys

// Key addresses one behavioral state in the tactic catalog.
type Key struct {
	Emotion        signal.Emotion
	Attention      signal.Attention
	StressZone     signal.Zone
	EngagementZone signal.Zone
}

// String renders the key in its canonical slash form, used as the rotation
// counter identity and in the decision log.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Emotion, k.Attention, k.StressZone, k.EngagementZone)
}

// CrisisTag addresses an alert-driven tactic sequence.
type CrisisTag string

const (
	CrisisEngagementDrop CrisisTag = "__engagement_drop__"
	CrisisStressSpike    CrisisTag = "__stress_spike__"
	CrisisInconsistency  CrisisTag = "__inconsistency__"
	CrisisAttentionLost  CrisisTag = "__attention_lost__"
)

// crisisTags is the closed set, in a stable order for validation and export.
var crisisTags = []CrisisTag{
	CrisisEngagementDrop,
	CrisisStressSpike,
	CrisisInconsistency,
	CrisisAttentionLost,
}

// #endregion keys

// #region entry

// Entry is the tactic content for one key: either a single fixed tactic or a
// three-step escalation sequence the rotation tracker cycles through.
type Entry struct {
	Variants []string
}

// #endregion entry

// #region catalog

// Catalog is the swappable tactic content resource. A lookup miss is a
// defined state the selector handles, not an error.
type Catalog struct {
	tactics  map[Key]Entry
	crisis   map[CrisisTag]Entry
	defaults []string
}

// Lookup returns the entry for a behavioral state key.
func (c *Catalog) Lookup(k Key) (Entry, bool) {
	e, ok := c.tactics[k]
	return e, ok
}

// LookupCrisis returns the entry for an alert-driven tag.
func (c *Catalog) LookupCrisis(t CrisisTag) (Entry, bool) {
	e, ok := c.crisis[t]
	return e, ok
}

// VariantCount reports how many variants the key's entry holds, 0 on miss.
func (c *Catalog) VariantCount(k Key) int {
	return len(c.tactics[k].Variants)
}

// CrisisVariantCount reports how many variants the tag's entry holds, 0 on miss.
func (c *Catalog) CrisisVariantCount(t CrisisTag) int {
	return len(c.crisis[t].Variants)
}

// Defaults returns the generic rotating fallback pool.
func (c *Catalog) Defaults() []string {
	return c.defaults
}

// Len reports how many behavioral state keys the catalog holds.
func (c *Catalog) Len() int {
	return len(c.tactics)
}

// #endregion catalog

// #region validate

// Validate checks catalog integrity: every entry carries 1 or 3 variants with
// non-empty text, every key uses valid enum values, all four crisis tags are
// present, and the default pool is non-empty.
func (c *Catalog) Validate() error {
	for k, e := range c.tactics {
		if err := validVariants(e.Variants); err != nil {
			return fmt.Errorf("key %s: %w", k, err)
		}
		if !k.Emotion.Valid() {
			return fmt.Errorf("key %s: unknown emotion %q", k, k.Emotion)
		}
		if !k.Attention.Valid() {
			return fmt.Errorf("key %s: unknown attention %q", k, k.Attention)
		}
		if !validZone(k.StressZone) {
			return fmt.Errorf("key %s: unknown stress zone %q", k, k.StressZone)
		}
		if !validZone(k.EngagementZone) {
			return fmt.Errorf("key %s: unknown engagement zone %q", k, k.EngagementZone)
		}
	}
	for _, tag := range crisisTags {
		e, ok := c.crisis[tag]
		if !ok {
			return fmt.Errorf("missing crisis tag %s", tag)
		}
		if err := validVariants(e.Variants); err != nil {
			return fmt.Errorf("crisis %s: %w", tag, err)
		}
	}
	for tag := range c.crisis {
		if !knownCrisisTag(tag) {
			return fmt.Errorf("unknown crisis tag %s", tag)
		}
	}
	if len(c.defaults) == 0 {
		return fmt.Errorf("default pool is empty")
	}
	for i, d := range c.defaults {
		if d == "" {
			return fmt.Errorf("default %d is empty", i)
		}
	}
	return nil
}

func validVariants(variants []string) error {
	if n := len(variants); n != 1 && n != 3 {
		return fmt.Errorf("entry must carry 1 or 3 variants, got %d", n)
	}
	for i, v := range variants {
		if v == "" {
			return fmt.Errorf("variant %d is empty", i)
		}
	}
	return nil
}

func validZone(z signal.Zone) bool {
	return z == signal.ZoneLow || z == signal.ZoneMid || z == signal.ZoneHigh
}

func knownCrisisTag(t CrisisTag) bool {
	for _, known := range crisisTags {
		if t == known {
			return true
		}
	}
	return false
}

// #endregion validate
