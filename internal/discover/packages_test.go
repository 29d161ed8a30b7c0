package discover

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immutagen/internal/schema"
)

func TestScanner_ScanPackages(t *testing.T) {
	scanner := NewScanner()
	specs, err := scanner.ScanPackages("immutagen/examples/model")
	require.NoError(t, err)
	require.Len(t, specs, 2)

	byName := make(map[string]*schema.ClassSpec)
	for _, s := range specs {
		byName[s.Name] = s
	}

	require.Contains(t, byName, "Customer")
	require.Contains(t, byName, "Order")
}

func TestScanner_CustomerProperties(t *testing.T) {
	scanner := NewScanner()
	specs, err := scanner.ScanPackages("immutagen/examples/model")
	require.NoError(t, err)

	var customer *schema.ClassSpec
	for _, s := range specs {
		if s.Name == "Customer" {
			customer = s
			break
		}
	}
	require.NotNil(t, customer)

	assert.Equal(t, "model", customer.Package)
	require.Len(t, customer.Properties, 6)

	// Properties come out in field order, names lowered.
	assert.Equal(t, "first", customer.Properties[0].Name)
	assert.Equal(t, schema.MustParseTypeRef("string"), customer.Properties[0].Type)
	assert.Equal(t, "since", customer.Properties[3].Name)
	assert.Equal(t, schema.MustParseTypeRef("time.Time"), customer.Properties[3].Type)
	assert.Equal(t, "favItems", customer.Properties[4].Name)
	assert.Equal(t, schema.MustParseTypeRef("[]string"), customer.Properties[4].Type)
	assert.Equal(t, schema.MustParseTypeRef("map[string]int"), customer.Properties[5].Type)
}

func TestScanner_DeclaredMethods(t *testing.T) {
	scanner := NewScanner()
	specs, err := scanner.ScanPackages("immutagen/examples/model")
	require.NoError(t, err)

	var order *schema.ClassSpec
	for _, s := range specs {
		if s.Name == "Order" {
			order = s
			break
		}
	}
	require.NotNil(t, order)

	assert.True(t, order.HasMethod("String"))
	assert.Equal(t, schema.MustParseTypeRef("*big.Int"), order.Properties[1].Type)
}

func TestHasDirective(t *testing.T) {
	group := func(lines ...string) *ast.CommentGroup {
		g := &ast.CommentGroup{}
		for _, ln := range lines {
			g.List = append(g.List, &ast.Comment{Text: ln})
		}

		return g
	}

	assert.True(t, hasDirective(group("//immutagen:immutable")))
	assert.True(t, hasDirective(group("// Customer is a prototype.", "//immutagen:immutable")))
	assert.False(t, hasDirective(group("// immutagen:immutable maybe later")))
	assert.False(t, hasDirective(group("// just a comment")))
	assert.False(t, hasDirective(nil))
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "favItems", lowerFirst("FavItems"))
	assert.Equal(t, "id", lowerFirst("Id"))
	assert.Equal(t, "", lowerFirst(""))
}
