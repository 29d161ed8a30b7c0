package gen

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immutagen/internal/classify"
	"immutagen/internal/schema"
	"immutagen/internal/synth"
)

func synthesize(t *testing.T, tbl classify.Table, spec *schema.ClassSpec) *synth.ClassArtifact {
	t.Helper()

	artifact, diags := synth.New(tbl).Class(spec)
	require.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Errors)
	require.NotNil(t, artifact)

	return artifact
}

func customerSpec() *schema.ClassSpec {
	return &schema.ClassSpec{
		Name:    "Customer",
		Package: "model",
		Properties: []schema.PropertySpec{
			{Name: "first", Type: schema.MustParseTypeRef("string")},
			{Name: "age", Type: schema.MustParseTypeRef("int")},
			{Name: "since", Type: schema.MustParseTypeRef("time.Time")},
			{Name: "favItems", Type: schema.MustParseTypeRef("[]string")},
			{Name: "scores", Type: schema.MustParseTypeRef("map[string]int")},
		},
	}
}

func TestGenerate_CustomerClass(t *testing.T) {
	artifact := synthesize(t, classify.DefaultTable(), customerSpec())

	files, err := NewGenerator(DefaultConfig()).Generate([]*synth.ClassArtifact{artifact})
	require.NoError(t, err)
	require.Len(t, files, 1)

	if testing.Verbose() {
		spew.Dump(files)
	}

	assert.Equal(t, "customer_immutable.go", files[0].Filename)

	content := string(files[0].Content)

	assert.Contains(t, content, "// Code generated by immutagen. DO NOT EDIT.")
	assert.Contains(t, content, "package model")

	// Storage: unexported fields, views for collection/map properties.
	assert.Contains(t, content, "first string")
	assert.Contains(t, content, "favItems immutable.List[string]")
	assert.Contains(t, content, "scores immutable.Map[string, int]")

	// Both constructor forms.
	assert.Contains(t, content, "func NewCustomer(first string, age int, since time.Time, favItems []string, scores map[string]int) Customer")
	assert.Contains(t, content, "func NewCustomerFromMap(props map[string]any) (Customer, error)")
	assert.Contains(t, content, `immutable.NewConstructionError("Customer", key, "unknown property")`)

	// Wrap on construct.
	assert.Contains(t, content, "c.favItems = immutable.WrapList(favItems)")
	assert.Contains(t, content, "c.scores = immutable.WrapMap(scores)")

	// Accessors.
	assert.Contains(t, content, "func (c Customer) First() string")
	assert.Contains(t, content, "func (c Customer) FavItems() immutable.List[string]")

	// Structural methods.
	assert.Contains(t, content, "func (c Customer) Equal(o Customer) bool")
	assert.Contains(t, content, "func (c Customer) Hash() uint64")
	assert.Contains(t, content, "func (c Customer) String() string")
	assert.Contains(t, content, `"Customer(first=%v, age=%v, since=%v, favItems=%v, scores=%v)"`)
}

func TestGenerate_ImportsAreMinimal(t *testing.T) {
	spec := &schema.ClassSpec{
		Name:    "Point",
		Package: "geo",
		Properties: []schema.PropertySpec{
			{Name: "x", Type: schema.MustParseTypeRef("int")},
			{Name: "y", Type: schema.MustParseTypeRef("int")},
		},
	}

	artifact := synthesize(t, classify.DefaultTable(), spec)

	files, err := NewGenerator(DefaultConfig()).Generate([]*synth.ClassArtifact{artifact})
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.NotContains(t, content, `"time"`)
	assert.NotContains(t, content, `"math/big"`)
	assert.Contains(t, content, `"immutagen/immutable"`)
}

func TestGenerate_CloneableProperty(t *testing.T) {
	tbl := classify.DefaultTable().Extend(classify.TableConfig{
		Cloneables: []string{"Avatar"},
	})
	spec := &schema.ClassSpec{
		Name:    "Profile",
		Package: "model",
		Properties: []schema.PropertySpec{
			{Name: "avatar", Type: schema.MustParseTypeRef("*Avatar")},
		},
	}

	artifact := synthesize(t, tbl, spec)

	files, err := NewGenerator(DefaultConfig()).Generate([]*synth.ClassArtifact{artifact})
	require.NoError(t, err)

	content := string(files[0].Content)

	// Copy-in and copy-out both clone, nil-guarded.
	assert.Contains(t, content, "c.avatar = avatar.Clone()")
	assert.Contains(t, content, "return c.avatar.Clone()")
	assert.Contains(t, content, "if c.avatar == nil {")
}

func TestGenerate_UserOverrideUsesFallbackName(t *testing.T) {
	spec := customerSpec()
	spec.Methods = []schema.MethodSig{{Name: "String"}}

	artifact := synthesize(t, classify.DefaultTable(), spec)

	files, err := NewGenerator(DefaultConfig()).Generate([]*synth.ClassArtifact{artifact})
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, "func (c Customer) GeneratedString() string")
	assert.NotContains(t, content, "func (c Customer) String() string")
	assert.Contains(t, content, "func (c Customer) Equal(o Customer) bool")
}

func TestGenerate_BigIntProperty(t *testing.T) {
	spec := &schema.ClassSpec{
		Name:    "Account",
		Package: "model",
		Properties: []schema.PropertySpec{
			{Name: "balance", Type: schema.MustParseTypeRef("*big.Int")},
		},
	}

	artifact := synthesize(t, classify.DefaultTable(), spec)

	files, err := NewGenerator(DefaultConfig()).Generate([]*synth.ClassArtifact{artifact})
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, `"math/big"`)
	assert.Contains(t, content, "c.balance.Cmp(o.balance) != 0")
	assert.Contains(t, content, "immutable.NilHash")
}

func TestGenerate_NonComparableElements(t *testing.T) {
	// Collection and map properties whose elements are themselves slices must
	// synthesize cleanly and emit content-based comparisons.
	spec := &schema.ClassSpec{
		Name:    "Matrix",
		Package: "model",
		Properties: []schema.PropertySpec{
			{Name: "rows", Type: schema.MustParseTypeRef("[][]int")},
			{Name: "cells", Type: schema.MustParseTypeRef("map[string][]int")},
		},
	}

	artifact := synthesize(t, classify.DefaultTable(), spec)

	files, err := NewGenerator(DefaultConfig()).Generate([]*synth.ClassArtifact{artifact})
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, "rows immutable.List[[]int]")
	assert.Contains(t, content, "cells immutable.Map[string, []int]")
	assert.Contains(t, content, "immutable.ListEqual(c.rows, o.rows)")
	assert.Contains(t, content, "immutable.MapEqual(c.cells, o.cells)")
}

func TestGenerate_BigIntValueRendersString(t *testing.T) {
	// big.Int declares String on the pointer receiver; the rendered value must
	// go through it instead of %v dumping the struct internals.
	spec := &schema.ClassSpec{
		Name:    "Ledger",
		Package: "model",
		Properties: []schema.PropertySpec{
			{Name: "balance", Type: schema.MustParseTypeRef("big.Int")},
		},
	}

	artifact := synthesize(t, classify.DefaultTable(), spec)

	files, err := NewGenerator(DefaultConfig()).Generate([]*synth.ClassArtifact{artifact})
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, "c.balance.String()")
	assert.Contains(t, content, `"Ledger(balance=%v)"`)
}

func TestGenerate_PackageFallsBackToConfig(t *testing.T) {
	spec := customerSpec()
	spec.Package = ""

	artifact := synthesize(t, classify.DefaultTable(), spec)

	files, err := NewGenerator(DefaultConfig()).Generate([]*synth.ClassArtifact{artifact})
	require.NoError(t, err)

	assert.Contains(t, string(files[0].Content), "package immutables")
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "customer", toSnake("Customer"))
	assert.Equal(t, "order_line_item", toSnake("OrderLineItem"))
	assert.Equal(t, "a", toSnake("A"))
}
