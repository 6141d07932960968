package translation

// Mapping stores the translations of a single locale. Keys keep the order in
// which they were first added; setting an existing key replaces its value
// without moving it.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping creates an empty mapping
func NewMapping() *Mapping {
	return &Mapping{
		values: make(map[string]string),
	}
}

// Set stores value under key and reports whether an earlier value was replaced
func (m *Mapping) Set(key, value string) bool {
	_, exists := m.values[key]
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return exists
}

// Get retrieves the translation for key
func (m *Mapping) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Keys returns the keys in first-insertion order
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys
func (m *Mapping) Len() int {
	return len(m.keys)
}

// ToMap returns a copy of the mapping as a plain map
func (m *Mapping) ToMap() map[string]string {
	// Return a copy to prevent external modification
	result := make(map[string]string, len(m.values))
	for k, v := range m.values {
		result[k] = v
	}
	return result
}

// Catalog is the ordered set of locale mappings loaded in one conversion run.
type Catalog struct {
	locales  []string
	mappings map[string]*Mapping
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		mappings: make(map[string]*Mapping),
	}
}

// Put registers the mapping for locale. A locale that is already present
// keeps its position but its mapping is replaced; the return value reports
// that replacement.
func (c *Catalog) Put(locale string, m *Mapping) bool {
	_, exists := c.mappings[locale]
	if !exists {
		c.locales = append(c.locales, locale)
	}
	c.mappings[locale] = m
	return exists
}

// Mapping returns the mapping for locale, creating an empty one on first use
func (c *Catalog) Mapping(locale string) *Mapping {
	if m, ok := c.mappings[locale]; ok {
		return m
	}
	m := NewMapping()
	c.Put(locale, m)
	return m
}

// Lookup returns the mapping for locale if it was loaded
func (c *Catalog) Lookup(locale string) (*Mapping, bool) {
	m, ok := c.mappings[locale]
	return m, ok
}

// Locales returns the locales in load order
func (c *Catalog) Locales() []string {
	locales := make([]string, len(c.locales))
	copy(locales, c.locales)
	return locales
}

// Len returns the number of locales
func (c *Catalog) Len() int {
	return len(c.locales)
}
