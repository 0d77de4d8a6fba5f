package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Key
		wantErr bool
	}{
		{name: "full key", input: "myplugin:lifesteal", want: Key{Namespace: "myplugin", Name: "lifesteal"}},
		{name: "bare name uses default namespace", input: "sharpness", want: Key{Namespace: "minecraft", Name: "sharpness"}},
		{name: "empty namespace uses default", input: ":sharpness", want: Key{Namespace: "minecraft", Name: "sharpness"}},
		{name: "surrounding whitespace", input: "  a.b:c/d  ", want: Key{Namespace: "a.b", Name: "c/d"}},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "empty name", input: "myplugin:", wantErr: true},
		{name: "uppercase", input: "MyPlugin:x", wantErr: true},
		{name: "slash in namespace", input: "my/plugin:x", wantErr: true},
		{name: "two separators", input: "a:b:c", wantErr: true},
		{name: "space in name", input: "a:b c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyIn(t *testing.T) {
	k, err := ParseKeyIn("lifesteal", "myplugin")
	require.NoError(t, err)
	assert.Equal(t, "myplugin:lifesteal", k.String())
}

func TestKey_StringRoundTrip(t *testing.T) {
	k := MustKey("myplugin", "life_steal")
	parsed, err := ParseKey(k.String())
	require.NoError(t, err)
	assert.Equal(t, k, parsed)
}

func TestMustKey_Panics(t *testing.T) {
	assert.Panics(t, func() { MustKey("Bad", "x") })
}

func TestKey_IsZero(t *testing.T) {
	assert.True(t, Key{}.IsZero())
	assert.False(t, MustKey("a", "b").IsZero())
}

func TestKey_JSON(t *testing.T) {
	type wrapper struct {
		Keys []Key `json:"keys"`
	}
	data, err := json.Marshal(wrapper{Keys: []Key{MustKey("a", "b"), MustKey("minecraft", "mending")}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"keys":["a:b","minecraft:mending"]}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"keys":["x:y","unbreaking"]}`), &w))
	assert.Equal(t, []Key{MustKey("x", "y"), MustKey("minecraft", "unbreaking")}, w.Keys)

	assert.Error(t, json.Unmarshal([]byte(`{"keys":["Nope"]}`), &w))
}

func TestKey_MapKeyEquality(t *testing.T) {
	m := map[Key]int{MustKey("a", "b"): 1}
	k, err := ParseKey("a:b")
	require.NoError(t, err)
	assert.Equal(t, 1, m[k])
}

func TestVanillaKeys(t *testing.T) {
	keys := VanillaKeys()
	assert.Len(t, keys, len(VanillaNames))
	for _, k := range keys {
		assert.Equal(t, DefaultNamespace, k.Namespace)
		assert.True(t, IsVanilla(k))
	}
	assert.False(t, IsVanilla(MustKey("myplugin", "sharpness")))
	assert.False(t, IsVanilla(MustKey("minecraft", "lifesteal")))
}
