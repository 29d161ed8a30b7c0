package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immutagen/internal/classify"
	"immutagen/internal/diagnostic"
	"immutagen/internal/schema"
)

func validSpec() *schema.ClassSpec {
	return &schema.ClassSpec{
		Name:    "Customer",
		Package: "model",
		Properties: []schema.PropertySpec{
			{Name: "first", Type: schema.MustParseTypeRef("string")},
			{Name: "age", Type: schema.MustParseTypeRef("int")},
			{Name: "since", Type: schema.MustParseTypeRef("time.Time")},
			{Name: "favItems", Type: schema.MustParseTypeRef("[]string")},
		},
	}
}

func TestClass_ValidSpec(t *testing.T) {
	diags := Class(classify.DefaultTable(), validSpec())

	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
}

func TestClass_ExtensibleRejected(t *testing.T) {
	spec := validSpec()
	spec.Extensible = true

	diags := Class(classify.DefaultTable(), spec)

	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeExtensibleClass, diags.Errors[0].Code)
}

func TestClass_DisallowedPropertyNamed(t *testing.T) {
	spec := validSpec()
	spec.Properties = append(spec.Properties,
		schema.PropertySpec{Name: "widget", Type: schema.MustParseTypeRef("Widget")})

	diags := Class(classify.DefaultTable(), spec)

	require.Len(t, diags.Errors, 1)
	e := diags.Errors[0]
	assert.Equal(t, diagnostic.CodeDisallowedType, e.Code)
	assert.Equal(t, "widget", e.Property)
	assert.Equal(t, "Widget", e.DeclaredType)
}

func TestClass_ReportsAllViolations(t *testing.T) {
	spec := &schema.ClassSpec{
		Name:       "Broken",
		Extensible: true,
		Properties: []schema.PropertySpec{
			{Name: "a", Type: schema.MustParseTypeRef("WidgetA")},
			{Name: "b", Type: schema.MustParseTypeRef("WidgetB")},
			{Name: "c", Type: schema.MustParseTypeRef("int")},
		},
		Methods: []schema.MethodSig{{Name: "SetC", Args: []string{"int"}}},
	}

	diags := Class(classify.DefaultTable(), spec)

	// extensible + two disallowed types + one mutator, all in one report
	assert.Len(t, diags.Errors, 4)
}

func TestClass_ExplicitAccessorWarnsOnly(t *testing.T) {
	spec := validSpec()
	spec.Properties = append(spec.Properties,
		schema.PropertySpec{
			Name:             "raw",
			Type:             schema.MustParseTypeRef("Widget"),
			ExplicitAccessor: true,
		})

	diags := Class(classify.DefaultTable(), spec)

	// Non-significant property: the disallowed type does not error, the
	// convention bypass warns.
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeExplicitAccessor, diags.Warnings[0].Code)
}

func TestClass_StaticMutatorIgnored(t *testing.T) {
	spec := validSpec()
	spec.Properties = append(spec.Properties,
		schema.PropertySpec{Name: "cache", Type: schema.MustParseTypeRef("string"), Static: true})
	spec.Methods = []schema.MethodSig{{Name: "SetCache"}}

	diags := Class(classify.DefaultTable(), spec)
	assert.True(t, diags.IsValid())
}

func TestClass_DuplicateProperty(t *testing.T) {
	spec := validSpec()
	spec.Properties = append(spec.Properties,
		schema.PropertySpec{Name: "first", Type: schema.MustParseTypeRef("string")})

	diags := Class(classify.DefaultTable(), spec)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateProp, diags.Errors[0].Code)
}
