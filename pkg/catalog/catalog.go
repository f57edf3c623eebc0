package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"cropadvisor/entities"
)

// Catalog is the crop reference table. It keeps the source order of its rows,
// which is also the ranking tie-break order.
type Catalog struct {
	crops []entities.CropProfile
	index map[string]int
}

// Key normalizes a crop name for lookups: lower case with all whitespace removed.
func Key(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

func New(crops []entities.CropProfile) (*Catalog, error) {
	if len(crops) == 0 {
		return nil, errors.New("catalog: no crops")
	}
	c := &Catalog{crops: make([]entities.CropProfile, 0, len(crops)), index: make(map[string]int, len(crops))}
	for _, p := range crops {
		k := Key(p.Name)
		if k == "" {
			return nil, errors.New("catalog: crop without a name")
		}
		if _, dup := c.index[k]; dup {
			return nil, fmt.Errorf("catalog: duplicate crop %q", p.Name)
		}
		c.index[k] = len(c.crops)
		c.crops = append(c.crops, clone(p))
	}
	return c, nil
}

// All returns deep copies of the profiles in table order.
func (c *Catalog) All() []entities.CropProfile {
	out := make([]entities.CropProfile, len(c.crops))
	for i, p := range c.crops {
		out[i] = clone(p)
	}
	return out
}

func (c *Catalog) Lookup(name string) (entities.CropProfile, bool) {
	i, ok := c.index[Key(name)]
	if !ok {
		return entities.CropProfile{}, false
	}
	return clone(c.crops[i]), true
}

func (c *Catalog) Len() int { return len(c.crops) }

func (c *Catalog) Names() []string {
	out := make([]string, len(c.crops))
	for i, p := range c.crops {
		out[i] = p.Name
	}
	return out
}

// clone copies every slice and pointer so callers cannot change the table.
func clone(p entities.CropProfile) entities.CropProfile {
	p.PlantingMonths = slices.Clone(p.PlantingMonths)
	p.HarvestMonths = slices.Clone(p.HarvestMonths)
	p.Practices = slices.Clone(p.Practices)
	p.PestManagement = slices.Clone(p.PestManagement)
	p.Fertilizer = slices.Clone(p.Fertilizer)
	if p.Climate != nil {
		cr := *p.Climate
		p.Climate = &cr
	}
	if p.Soil != nil {
		sr := *p.Soil
		sr.Types = slices.Clone(sr.Types)
		p.Soil = &sr
	}
	return p
}
