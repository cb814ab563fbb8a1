package fsops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := NewRealFS()

	t.Run("writes new file with content and mode", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "out.json")

		if err := fs.AtomicWrite(target, []byte(`{"a":1}`), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(data) != `{"a":1}` {
			t.Errorf("content = %q, want %q", data, `{"a":1}`)
		}

		info, err := os.Stat(target)
		if err != nil {
			t.Fatalf("failed to stat written file: %v", err)
		}
		if info.Mode().Perm() != 0644 {
			t.Errorf("mode = %v, want 0644", info.Mode().Perm())
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "out.txt")
		if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if err := fs.AtomicWrite(target, []byte("new"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		data, _ := os.ReadFile(target)
		if string(data) != "new" {
			t.Errorf("content = %q, want %q", data, "new")
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "deep", "nested", "out.txt")

		if err := fs.AtomicWrite(target, []byte("x"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}
		if _, err := os.Stat(target); err != nil {
			t.Errorf("written file missing: %v", err)
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "out.txt")

		if err := fs.AtomicWrite(target, []byte("x"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), ".sourcepacker-tmp-") {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
	})
}

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	t.Run("true for existing file", func(t *testing.T) {
		file := filepath.Join(tmpDir, "here.txt")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		exists, err := fs.Exists(file)
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if !exists {
			t.Error("Exists = false for existing file, want true")
		}
	})

	t.Run("true for existing directory", func(t *testing.T) {
		exists, err := fs.Exists(tmpDir)
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if !exists {
			t.Error("Exists = false for existing directory, want true")
		}
	})

	t.Run("false for missing path", func(t *testing.T) {
		exists, err := fs.Exists(filepath.Join(tmpDir, "nope"))
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if exists {
			t.Error("Exists = true for missing path, want false")
		}
	})
}

func TestRealFS_Remove(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "gone.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if err := fs.Remove(file); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Errorf("file still present after Remove: %v", err)
	}

	if err := fs.Remove(file); !os.IsNotExist(err) {
		t.Errorf("Remove on missing file = %v, want IsNotExist", err)
	}
}

func TestRealFS_ReadFileAndStat(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "data.txt")
	if err := os.WriteFile(file, []byte("payload"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	data, err := fs.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("ReadFile = %q, want %q", data, "payload")
	}

	info, err := fs.Stat(file)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != int64(len("payload")) {
		t.Errorf("Stat size = %d, want %d", info.Size(), len("payload"))
	}

	if _, err := fs.Stat(filepath.Join(tmpDir, "missing")); !os.IsNotExist(err) {
		t.Errorf("Stat on missing path = %v, want IsNotExist", err)
	}
}
