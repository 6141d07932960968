package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping(t *testing.T) {
	m := NewMapping()

	assert.False(t, m.Set("greeting", "hello"))
	assert.False(t, m.Set("farewell", "bye"))
	assert.True(t, m.Set("greeting", "hi"), "second Set should report an overwrite")

	assert.Equal(t, []string{"greeting", "farewell"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	got, ok := m.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "hi", got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMapping_EmptyValueIsPresent(t *testing.T) {
	m := NewMapping()
	m.Set("blank", "")

	got, ok := m.Get("blank")
	assert.True(t, ok)
	assert.Equal(t, "", got)
}

func TestMapping_CopiesAreIndependent(t *testing.T) {
	m := NewMapping()
	m.Set("a", "1")

	keys := m.Keys()
	keys[0] = "changed"
	values := m.ToMap()
	values["a"] = "changed"

	assert.Equal(t, []string{"a"}, m.Keys())
	got, _ := m.Get("a")
	assert.Equal(t, "1", got)
}

func TestCatalog(t *testing.T) {
	c := NewCatalog()

	en := NewMapping()
	en.Set("a", "1")
	assert.False(t, c.Put("en", en))

	fr := c.Mapping("fr")
	fr.Set("a", "un")

	assert.Equal(t, []string{"en", "fr"}, c.Locales())
	assert.Equal(t, 2, c.Len())

	replacement := NewMapping()
	replacement.Set("b", "2")
	assert.True(t, c.Put("en", replacement))
	assert.Equal(t, []string{"en", "fr"}, c.Locales(), "replacing a locale keeps its position")

	got, ok := c.Lookup("en")
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, got.Keys())

	assert.Same(t, fr, c.Mapping("fr"))

	_, ok = c.Lookup("de")
	assert.False(t, ok)
}
