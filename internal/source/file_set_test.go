package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("loop.c", []byte("#pragma omp parallel"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("loop.c")
	if !exists {
		t.Error("expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("expected latest ID to be %d, got %d", id1, latestID)
	}

	// Re-adding the same path yields a fresh ID and repoints the index.
	id2 := fs.Add("loop.c", []byte("#pragma omp parallel for"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}

	latestID, exists = fs.GetLatest("loop.c")
	if !exists {
		t.Error("expected file to exist after second Add")
	}
	if latestID != id2 {
		t.Errorf("expected latest ID to be %d, got %d", id2, latestID)
	}

	file1 := fs.Get(id1)
	if string(file1.Content) != "#pragma omp parallel" {
		t.Errorf("first version content changed: %q", file1.Content)
	}
	file2 := fs.Get(id2)
	if string(file2.Content) != "#pragma omp parallel for" {
		t.Errorf("second version content wrong: %q", file2.Content)
	}
}

func TestAddVirtualLineIndex(t *testing.T) {
	fs := NewFileSet()
	content := "!$omp parallel\n!$omp do\n!$omp end do\n"
	id := fs.AddVirtual("<arg>", []byte(content))

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if got := f.NumLines(); got != 3 {
		t.Errorf("NumLines = %d, want 3", got)
	}
	if got := f.GetLine(2); got != "!$omp do" {
		t.Errorf("GetLine(2) = %q, want %q", got, "!$omp do")
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.f90", []byte("abc\ndefg\nhi"))

	start, end := fs.Resolve(Span{File: id, Start: 4, End: 6})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 3 {
		t.Errorf("end = %d:%d, want 2:3", end.Line, end.Col)
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.c")
	if err := os.WriteFile(path, []byte("#pragma omp barrier\r\nint x;\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if got := f.GetLine(1); got != "#pragma omp barrier" {
		t.Errorf("GetLine(1) = %q", got)
	}
}

func TestLoadEncodedLatin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.f")
	// 0xE9 is 'é' in Latin-1 and invalid as a standalone UTF-8 byte.
	if err := os.WriteFile(path, []byte{'!', ' ', 0xE9, '\n'}, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.LoadEncoded(path, EncodingLatin1)
	if err != nil {
		t.Fatalf("LoadEncoded: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileDecoded == 0 {
		t.Error("expected FileDecoded flag")
	}
	if got := f.GetLine(1); got != "! é" {
		t.Errorf("GetLine(1) = %q, want %q", got, "! é")
	}
}

func TestHashDiffersByContent(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.c", []byte("#pragma acc kernels"))
	b := fs.AddVirtual("b.c", []byte("#pragma acc parallel"))
	if fs.Get(a).Hash == fs.Get(b).Hash {
		t.Error("distinct content must not collide")
	}
}
