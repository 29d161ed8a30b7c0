package gen_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// repoRootDir resolves the module root, two levels above this package.
func repoRootDir(t *testing.T) string {
	t.Helper()

	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("failed to resolve repo root: %v", err)
	}

	return root
}

// runTool runs the immutagen CLI from the repo root and fails the test with
// the combined output when it exits non-zero.
func runTool(t *testing.T, repoRoot string, args ...string) {
	t.Helper()

	cmd := exec.CommandContext(context.Background(), "go",
		append([]string{"run", "./cmd/immutagen"}, args...)...)
	cmd.Dir = repoRoot

	if b, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("immutagen failed: %v\n%s", err, string(b))
	}
}

// dumpGenerated logs every file in dir, best effort, so a failing compile or
// run shows what the generator actually produced.
func dumpGenerated(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if b, err := os.ReadFile(filepath.Join(dir, e.Name())); err == nil {
			t.Logf("generated %s:\n%s", e.Name(), string(b))
		}
	}
}
