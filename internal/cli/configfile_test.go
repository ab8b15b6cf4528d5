package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minigrep.conf")
	content := "# default flags\n-i\n\n--color\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MINIGREP_CONFIG_PATH", path)

	got := LoadConfigArgs()
	want := []string{"-i", "--color"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfigArgs() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigArgs_MissingFile(t *testing.T) {
	t.Setenv("MINIGREP_CONFIG_PATH", filepath.Join(t.TempDir(), "nope"))
	if got := LoadConfigArgs(); got != nil {
		t.Errorf("LoadConfigArgs() = %v, want nil", got)
	}
}
