package versions

import "strings"

// Category classifies a catalog entry.
type Category string

const (
	CategoryBible      Category = "BIBLE"
	CategoryCommentary Category = "COMMENTARY"
)

// DefaultAlways is the key appended after the featured block.
const DefaultAlways = "ESV"

// Record is one version in the catalog. Initials is the unique key.
type Record struct {
	Initials     string   `json:"initials"`
	Name         string   `json:"name"`
	LanguageCode string   `json:"languageCode"`
	LanguageName string   `json:"languageName"`
	Category     Category `json:"category"`
}

// Catalog is the read-only list of versions offered to the picker.
type Catalog struct {
	Versions []Record `json:"versions"`
	Featured []string `json:"featured,omitempty"`
	Always   string   `json:"always,omitempty"`

	keyed map[string]int
}

// NewCatalog indexes versions by upper-cased initials. The first record
// wins when initials repeat.
func NewCatalog(records []Record, featured []string, always string) *Catalog {
	c := &Catalog{
		Versions: records,
		Featured: featured,
		Always:   always,
	}
	c.index()
	return c
}

func (c *Catalog) index() {
	c.keyed = make(map[string]int, len(c.Versions))
	for i, r := range c.Versions {
		k := strings.ToUpper(r.Initials)
		if _, ok := c.keyed[k]; !ok {
			c.keyed[k] = i
		}
	}
}

// Lookup finds a record by initials, ignoring case.
func (c *Catalog) Lookup(key string) (Record, bool) {
	if c == nil {
		return Record{}, false
	}
	if c.keyed == nil {
		c.index()
	}
	i, ok := c.keyed[strings.ToUpper(strings.TrimSpace(key))]
	if !ok {
		return Record{}, false
	}
	return c.Versions[i], true
}

// Len returns the number of catalog versions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Versions)
}

// MenuOrder is the order the dropdown lists entries in: featured versions,
// then the always-included key, then the whole catalog. Keys repeat across
// the blocks. Featured keys missing from the catalog are skipped.
func (c *Catalog) MenuOrder() []Record {
	if c == nil {
		return nil
	}

	var out []Record
	if len(c.Featured) > 0 {
		for _, key := range c.Featured {
			if r, ok := c.Lookup(key); ok {
				out = append(out, r)
			}
		}
		always := c.Always
		if always == "" {
			always = DefaultAlways
		}
		if r, ok := c.Lookup(always); ok {
			out = append(out, r)
		}
	}
	return append(out, c.Versions...)
}

// FeaturedCount is how many leading MenuOrder entries belong to the
// featured block, so renderers can draw a break after them.
func (c *Catalog) FeaturedCount() int {
	if c == nil || len(c.Featured) == 0 {
		return 0
	}
	return len(c.MenuOrder()) - len(c.Versions)
}

// CountByCategory tallies records per category.
func (c *Catalog) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	if c == nil {
		return counts
	}
	for _, r := range c.Versions {
		counts[r.Category]++
	}
	return counts
}
