package nbt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompound_GetInt(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int
		wantOK bool
	}{
		{name: "int", value: 5, want: 5, wantOK: true},
		{name: "int16", value: int16(32767), want: 32767, wantOK: true},
		{name: "int64", value: int64(-3), want: -3, wantOK: true},
		{name: "uint8", value: uint8(200), want: 200, wantOK: true},
		{name: "integral float", value: 4.0, want: 4, wantOK: true},
		{name: "fraction", value: 4.5, wantOK: false},
		{name: "json number", value: json.Number("12"), want: 12, wantOK: true},
		{name: "json fraction", value: json.Number("1.5"), wantOK: false},
		{name: "string", value: "3", wantOK: false},
		{name: "bool", value: true, wantOK: false},
		{name: "missing", value: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			if tt.value != nil {
				c.Set("lvl", tt.value)
			}
			got, ok := c.GetInt("lvl")
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCompound_GetBool(t *testing.T) {
	c := New()
	c.SetBool("a", true)
	c.Set("b", 1)
	c.Set("c", int8(0))
	c.Set("d", 2)
	c.Set("e", "true")

	v, ok := c.GetBool("a")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = c.GetBool("b")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = c.GetBool("c")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = c.GetBool("d")
	assert.False(t, ok)
	_, ok = c.GetBool("e")
	assert.False(t, ok)
}

func TestCompound_StringList(t *testing.T) {
	c := New()
	c.SetStringList("lines", []string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, c.GetStringList("lines"))

	c.Set("mixed", []any{"a", 1, "b"})
	assert.Equal(t, []string{"a", "b"}, c.GetStringList("mixed"))

	c.SetString("scalar", "x")
	assert.Nil(t, c.GetStringList("scalar"))
}

func TestCompound_NestedSharesStorage(t *testing.T) {
	c := New()
	ns := c.GetOrCreateCompound("elib")
	ns.SetString("k", "v")

	again, ok := c.GetCompound("elib")
	require.True(t, ok)
	got, _ := again.GetString("k")
	assert.Equal(t, "v", got)

	c.SetString("elib", "clobbered")
	_, ok = c.GetCompound("elib")
	assert.False(t, ok)
	assert.NotNil(t, c.GetOrCreateCompound("elib"))
}

func TestCompound_CompoundList(t *testing.T) {
	c := New()
	a := c.AddCompound("list")
	a.SetString("id", "a")
	c.Set("list", append(c.Raw()["list"].([]any), "junk"))
	b := c.AddCompound("list")
	b.SetString("id", "b")

	entries := c.GetCompoundList("list")
	require.Len(t, entries, 2)

	entries[1].SetInt("lvl", 3)
	lvl, ok := c.GetCompoundList("list")[1].GetInt("lvl")
	assert.True(t, ok)
	assert.Equal(t, 3, lvl)

	assert.True(t, c.RemoveCompound("list", 0))
	remaining := c.GetCompoundList("list")
	require.Len(t, remaining, 1)
	id, _ := remaining[0].GetString("id")
	assert.Equal(t, "b", id)
	assert.Len(t, c.Raw()["list"], 2, "non-compound elements are left alone")

	assert.False(t, c.RemoveCompound("list", 5))
	assert.False(t, c.RemoveCompound("list", -1))
	assert.False(t, c.RemoveCompound("missing", 0))
}

func TestCompound_JSONRoundTrip(t *testing.T) {
	c := New()
	c.SetBool("HideFlags", true)
	e := c.AddCompound("Enchantments")
	e.SetString("id", "test:lifesteal")
	e.SetInt("lvl", 32767)
	c.GetOrCreateCompound("elib").SetStringList("lore-lines", []string{"§r§6Lifesteal III"})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	entries := parsed.GetCompoundList("Enchantments")
	require.Len(t, entries, 1)
	lvl, ok := entries[0].GetInt("lvl")
	assert.True(t, ok)
	assert.Equal(t, 32767, lvl)
	hidden, _ := parsed.GetBool("HideFlags")
	assert.True(t, hidden)
	ns, ok := parsed.GetCompound("elib")
	require.True(t, ok)
	assert.Equal(t, []string{"§r§6Lifesteal III"}, ns.GetStringList("lore-lines"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`{"a":`))
	assert.Error(t, err)

	c, err := Parse([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, c.Keys())
}

func TestCompound_Clone(t *testing.T) {
	c := New()
	c.GetOrCreateCompound("elib").SetString("k", "v")
	c.SetStringList("l", []string{"a"})

	clone := c.Clone()
	clone.GetOrCreateCompound("elib").SetString("k", "changed")
	clone.SetStringList("l", []string{"b"})

	ns, _ := c.GetCompound("elib")
	v, _ := ns.GetString("k")
	assert.Equal(t, "v", v)
	assert.Equal(t, []string{"a"}, c.GetStringList("l"))
}

func TestCompound_KeysAndRemove(t *testing.T) {
	c := FromMap(nil)
	c.SetInt("b", 1)
	c.SetInt("a", 2)
	assert.Equal(t, []string{"a", "b"}, c.Keys())

	c.Remove("a")
	assert.False(t, c.Has("a"))
	assert.True(t, c.Has("b"))
}
