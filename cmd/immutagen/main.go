// Package main provides the CLI entrypoint for immutagen.
//
// immutagen is a Go codegen tool that:
//   - Reads class definitions from YAML schema files or from Go packages
//     whose structs carry the immutagen:immutable directive
//   - Validates every class against the type classification rules
//   - Generates immutable value classes with defensive construction,
//     read-only collection views, and structural Equal/Hash/String methods
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"immutagen/internal/classify"
	"immutagen/internal/diagnostic"
	"immutagen/internal/discover"
	"immutagen/internal/gen"
	"immutagen/internal/schema"
	"immutagen/internal/synth"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "immutagen:", err)
		os.Exit(1)
	}
}

type options struct {
	schemaPath string
	packages   string
	outDir     string
	pkgName    string
	enums      string
	immutables string
	cloneables string
	dateLikes  string
	imports    string
	dryRun     bool
}

func run(args []string) error {
	fs := flag.NewFlagSet("immutagen", flag.ContinueOnError)

	var opts options

	fs.StringVar(&opts.schemaPath, "schema", "", "path to a YAML class schema file")
	fs.StringVar(&opts.packages, "packages", "",
		"comma-separated Go package patterns to scan for immutagen:immutable structs")
	fs.StringVar(&opts.outDir, "out", ".", "output directory for generated files")
	fs.StringVar(&opts.pkgName, "pkg", "", "package name for classes that do not declare one")
	fs.StringVar(&opts.enums, "enums", "", "comma-separated named types to classify as enums")
	fs.StringVar(&opts.immutables, "immutables", "",
		"comma-separated named types to classify as known immutable")
	fs.StringVar(&opts.cloneables, "cloneables", "",
		"comma-separated named types to classify as cloneable")
	fs.StringVar(&opts.dateLikes, "date-likes", "",
		"comma-separated named types to classify as date-like")
	fs.StringVar(&opts.imports, "imports", "",
		"comma-separated import paths for packages named in schema types")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "print generated filenames without writing files")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.schemaPath == "" && opts.packages == "" {
		return errors.New("nothing to do: pass -schema and/or -packages")
	}

	tbl := classify.DefaultTable().Extend(classify.TableConfig{
		Enums:           splitList(opts.enums),
		KnownImmutables: splitList(opts.immutables),
		Cloneables:      splitList(opts.cloneables),
		DateLikes:       splitList(opts.dateLikes),
	})

	specs, tbl, diags, err := collectSpecs(opts, tbl)
	if err != nil {
		return err
	}

	result, err := synth.New(tbl).Batch(context.Background(), specs)
	if err != nil {
		return err
	}

	diags.Merge(result.Diagnostics())
	printDiagnostics(diags)

	cfg := gen.DefaultConfig()
	if opts.pkgName != "" {
		cfg.PackageName = opts.pkgName
	}

	cfg.ExtraImports = splitList(opts.imports)

	files, err := gen.NewGenerator(cfg).Generate(result.Artifacts())
	if err != nil {
		return err
	}

	if opts.dryRun {
		for _, f := range files {
			fmt.Println(f.Filename)
		}
	} else {
		if err := gen.WriteFiles(files, opts.outDir); err != nil {
			return err
		}

		for _, f := range files {
			fmt.Println(filepath.Join(opts.outDir, f.Filename))
		}
	}

	// Failing classes never block the rest of the batch, but the run still
	// reports failure.
	if diags.HasErrors() {
		return fmt.Errorf("%d class(es) failed validation", failedCount(result))
	}

	return nil
}

// collectSpecs gathers class specifications from the schema file and the
// scanned packages, extending the classification table with the schema
// file's type registrations.
func collectSpecs(
	opts options,
	tbl classify.Table,
) ([]*schema.ClassSpec, classify.Table, diagnostic.Diagnostics, error) {
	var (
		specs []*schema.ClassSpec
		diags diagnostic.Diagnostics
	)

	if opts.schemaPath != "" {
		sf, err := discover.LoadFile(opts.schemaPath)
		if err != nil {
			return nil, tbl, diags, err
		}

		tbl = tbl.Extend(sf.TableConfig())

		fileSpecs, fileDiags := sf.ClassSpecs()
		specs = append(specs, fileSpecs...)
		diags.Merge(fileDiags)
	}

	if opts.packages != "" {
		scanned, err := discover.NewScanner().ScanPackages(splitList(opts.packages)...)
		if err != nil {
			return nil, tbl, diags, err
		}

		specs = append(specs, scanned...)
	}

	return specs, tbl, diags, nil
}

func printDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		fmt.Fprintln(os.Stderr, d.String())
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(os.Stderr, d.String())
	}
}

func failedCount(result *synth.BatchResult) int {
	n := 0

	for _, c := range result.Classes {
		if c.Diags.HasErrors() {
			n++
		}
	}

	return n
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var out []string

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
