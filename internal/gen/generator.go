package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"immutagen/internal/synth"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName is used for artifacts that do not name their own package.
	PackageName string
	// ExtraImports lists additional import paths for packages appearing in
	// schema type names (beyond the built-in time and math/big). The package
	// alias is the path's last element.
	ExtraImports []string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName: "immutables",
	}
}

// Generator renders class artifacts into Go source files.
type Generator struct {
	config Config
}

// NewGenerator creates a Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.PackageName == "" {
		config.PackageName = DefaultConfig().PackageName
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "customer_immutable.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders every artifact into its own file.
func (g *Generator) Generate(artifacts []*synth.ClassArtifact) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, a := range artifacts {
		file, err := g.generateClass(a)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", a.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateClass(a *synth.ClassArtifact) (*GeneratedFile, error) {
	data := g.buildTemplateData(a)

	var buf bytes.Buffer
	if err := classTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Formatting failures indicate a template bug; include the raw
		// output so the offending construct is visible.
		return nil, fmt.Errorf("formatting output: %w\n%s", err, buf.String())
	}

	return &GeneratedFile{
		Filename: g.filename(a),
		Content:  src,
	}, nil
}

func (g *Generator) packageName(a *synth.ClassArtifact) string {
	if a.Package != "" {
		return a.Package
	}

	return g.config.PackageName
}

func (g *Generator) filename(a *synth.ClassArtifact) string {
	return toSnake(a.Name) + "_immutable.go"
}

// toSnake converts CamelCase to snake_case for filenames.
func toSnake(s string) string {
	var sb strings.Builder

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
