package metrics

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetSysHealth(t *testing.T) {
	dbDir := t.TempDir()
	planDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dbDir, "mealplanner.db"), make([]byte, 600), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(planDir, "plan-1.json"), make([]byte, 424), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	t.Run("SumsAllStoragePaths", func(t *testing.T) {
		health := GetSysHealth(dbDir, planDir)
		if health.DataDiskSize != "1.0 KB" {
			t.Errorf("Expected 1.0 KB across both directories, got %q", health.DataDiskSize)
		}
		if health.Goroutines < 1 {
			t.Errorf("Expected at least one goroutine, got %d", health.Goroutines)
		}
	})

	t.Run("MissingPathContributesNothing", func(t *testing.T) {
		health := GetSysHealth(dbDir, filepath.Join(planDir, "does-not-exist"))
		if health.DataDiskSize != "600 B" {
			t.Errorf("Expected only the database directory counted, got %q", health.DataDiskSize)
		}
	})
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, c := range cases {
		if got := formatBytes(c.size); got != c.want {
			t.Errorf("formatBytes(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}
