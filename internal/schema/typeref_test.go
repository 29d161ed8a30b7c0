package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeRef_RoundTrip(t *testing.T) {
	cases := []string{
		"int",
		"string",
		"time.Time",
		"big.Int",
		"*Avatar",
		"[]string",
		"[4]byte",
		"map[string]int",
		"map[string][]int",
		"[]map[string]string",
		"*time.Time",
	}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			ref, err := ParseTypeRef(c)
			require.NoError(t, err)
			assert.Equal(t, c, ref.String())
		})
	}
}

func TestParseTypeRef_Kinds(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
	}{
		{"bool", KindBasic},
		{"rune", KindBasic},
		{"Money", KindNamed},
		{"time.Time", KindNamed},
		{"*Money", KindPointer},
		{"[]byte", KindSlice},
		{"[16]byte", KindArray},
		{"map[int]string", KindMap},
	}

	for _, c := range cases {
		ref, err := ParseTypeRef(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.kind, ref.Kind, c.in)
	}
}

func TestParseTypeRef_ArrayLength(t *testing.T) {
	ref, err := ParseTypeRef("[32]byte")
	require.NoError(t, err)
	assert.Equal(t, 32, ref.Len)
	require.NotNil(t, ref.Elem)
	assert.Equal(t, "byte", ref.Elem.Name)
}

func TestParseTypeRef_Errors(t *testing.T) {
	bad := []string{
		"",
		"  ",
		"[x]int",
		"[3",
		"map[string",
		"a.b.c",
		"foo bar",
		"3d",
	}

	for _, c := range bad {
		_, err := ParseTypeRef(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestPropertySignificance(t *testing.T) {
	assert.True(t, PropertySpec{Name: "age"}.Significant())
	assert.False(t, PropertySpec{Name: "count", Static: true}.Significant())
	assert.False(t, PropertySpec{Name: "raw", ExplicitAccessor: true}.Significant())
}

func TestClassSpecHelpers(t *testing.T) {
	spec := ClassSpec{
		Name: "Customer",
		Properties: []PropertySpec{
			{Name: "first", Type: MustParseTypeRef("string")},
			{Name: "cache", Type: MustParseTypeRef("string"), Static: true},
		},
		Methods: []MethodSig{{Name: "String"}},
	}

	assert.Len(t, spec.Significant(), 1)
	assert.True(t, spec.HasMethod("String"))
	assert.False(t, spec.HasMethod("Equal"))

	p, ok := spec.Property("first")
	require.True(t, ok)
	assert.Equal(t, "string", p.Type.Name)

	assert.Equal(t, "First", AccessorName("first"))
	assert.Equal(t, "SetFirst", MutatorName("first"))
}
