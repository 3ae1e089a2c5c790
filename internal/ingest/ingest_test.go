package ingest

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Python</w:t></w:r><w:r><w:tab/><w:t xml:space="preserve"> developer</w:t></w:r></w:p>
  </w:body>
</w:document>`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeDOCX(t *testing.T, path, body string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create(docxBody)
	if err != nil {
		t.Fatalf("create docx entry: %v", err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatalf("write docx entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close docx: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "alice.TXT")
	writeFile(t, txt, "Python developer, AWS")

	html := filepath.Join(dir, "bob.html")
	writeFile(t, html, `<html><head><style>p{}</style><script>var aws=1</script></head>
<body><h1>Bob</h1><ul><li>Go  and
Kubernetes</li></ul><p>Led a team</p></body></html>`)

	docx := filepath.Join(dir, "carol.docx")
	writeDOCX(t, docx, documentXML)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "text", path: txt, want: "Python developer, AWS"},
		{name: "html", path: html, want: "Bob\nGo and Kubernetes\nLed a team"},
		{name: "docx", path: docx, want: "Jane Doe\nPython\t developer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	binary := filepath.Join(dir, "broken.txt")
	writeFile(t, binary, "\xff\xfe\xfd")

	notZip := filepath.Join(dir, "broken.docx")
	writeFile(t, notZip, "plain text")

	if _, err := ReadFile(filepath.Join(dir, "resume.odt")); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if _, err := ReadFile(binary); !errors.Is(err, errNotUTF8) {
		t.Fatalf("expected errNotUTF8, got %v", err)
	}
	if _, err := ReadFile(notZip); err == nil {
		t.Fatalf("expected error for invalid docx")
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Fatalf("expected error for missing pdf")
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	resumes := filepath.Join(dir, "resumes")
	if err := os.Mkdir(resumes, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	writeFile(t, filepath.Join(resumes, "b.txt"), "second")
	writeFile(t, filepath.Join(resumes, "a.md"), "first")
	writeFile(t, filepath.Join(resumes, "notes.odt"), "ignored in directories")
	writeFile(t, filepath.Join(resumes, "bad.txt"), "\xff")
	writeFile(t, filepath.Join(dir, "single.txt"), "")
	writeFile(t, filepath.Join(dir, "photo.png"), "png")

	core, observed := observer.New(zapcore.WarnLevel)
	extractor := New(zap.New(core), 2)

	paths := []string{
		filepath.Join(dir, "single.txt"),
		resumes,
		filepath.Join(dir, "photo.png"),
		filepath.Join(dir, "missing"),
		"  ",
	}

	candidates, failures, err := extractor.Collect(context.Background(), paths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := strings.Join(candidates.IDs(), ",")
	if ids != "single.txt,a.md,b.txt" {
		t.Fatalf("unexpected candidates order: %s", ids)
	}

	if candidates.Items[0].Text != "" {
		t.Fatalf("empty files are still candidates, got %q", candidates.Items[0].Text)
	}
	if candidates.Items[1].Source != filepath.Join(resumes, "a.md") {
		t.Fatalf("unexpected source: %s", candidates.Items[1].Source)
	}

	if len(failures) != 3 {
		t.Fatalf("expected 3 failures, got %d: %v", len(failures), failures)
	}

	if observed.Len() != 3 {
		t.Fatalf("expected a warning per failure, got %d", observed.Len())
	}
}

func TestCollectCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "text")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := New(nil, 1).Collect(ctx, []string{dir}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
