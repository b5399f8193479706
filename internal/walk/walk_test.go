package walk

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFiles_RecursiveAndFiltered(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.go"))
	touch(t, filepath.Join(root, "b.txt"))
	touch(t, filepath.Join(root, "sub", "c.go"))
	touch(t, filepath.Join(root, "sub", "deep", "d.go"))

	files, warnings, err := Files(root, ".go")
	if err != nil {
		t.Fatalf("Files error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	want := []string{
		filepath.Join(root, "a.go"),
		filepath.Join(root, "sub", "c.go"),
		filepath.Join(root, "sub", "deep", "d.go"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFiles_LexicalOrder(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "z.go"))
	touch(t, filepath.Join(root, "a.go"))
	touch(t, filepath.Join(root, "m.go"))

	files, _, err := Files(root, ".go")
	if err != nil {
		t.Fatalf("Files error: %v", err)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Fatalf("not in lexical order: %v", files)
		}
	}
}

func TestFiles_SuffixCaseSensitive(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.GO"))
	touch(t, filepath.Join(root, "b.go"))

	files, _, err := Files(root, ".go")
	if err != nil {
		t.Fatalf("Files error: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "b.go" {
		t.Fatalf("files = %v, want only b.go", files)
	}
}

func TestFiles_MissingRoot(t *testing.T) {
	_, _, err := Files(filepath.Join(t.TempDir(), "nope"), ".go")
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}
