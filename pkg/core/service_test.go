package core_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/aretw0/flatcms/pkg/core"
)

// MockRepository implements core.Repository in memory.
// It deliberately does NOT implement core.Watchable to test fallback/errors.
type MockRepository struct {
	docs map[string][]byte
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		docs: make(map[string][]byte),
	}
}

func (m *MockRepository) List(ctx context.Context) ([]string, error) {
	var names []string
	for name := range m.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MockRepository) Read(ctx context.Context, name string) (core.Document, error) {
	content, ok := m.docs[name]
	if !ok {
		return core.Document{}, core.ErrNotFound
	}
	return core.Document{Name: name, Content: content, Format: core.FormatOf(name)}, nil
}

func (m *MockRepository) Write(ctx context.Context, name string, content []byte) error {
	m.docs[name] = append([]byte(nil), content...)
	return nil
}

func (m *MockRepository) Create(ctx context.Context, name string) error {
	if _, ok := m.docs[name]; ok {
		return core.ErrAlreadyExists
	}
	m.docs[name] = []byte{}
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, name string) error {
	if _, ok := m.docs[name]; !ok {
		return core.ErrNotFound
	}
	delete(m.docs, name)
	return nil
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

func TestService_CRUD(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)
	ctx := context.TODO()

	// 1. Create
	name, err := service.CreateDocument(ctx, "  notes.md ")
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if name != "notes.md" {
		t.Errorf("expected trimmed name 'notes.md', got '%s'", name)
	}

	doc, err := service.GetDocument(ctx, "notes.md")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if len(doc.Content) != 0 {
		t.Errorf("expected empty content, got %q", doc.Content)
	}
	if doc.Format != core.FormatMarkdown {
		t.Errorf("expected markdown format, got %s", doc.Format)
	}

	// 2. Save
	if err := service.SaveDocument(ctx, "notes.md", []byte("# Title")); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	doc, _ = service.GetDocument(ctx, "notes.md")
	if string(doc.Content) != "# Title" {
		t.Errorf("expected content '# Title', got '%s'", doc.Content)
	}

	// 3. List
	_ = service.SaveDocument(ctx, "changes.txt", nil)
	names, err := service.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(names) != 2 || names[0] != "changes.txt" {
		t.Errorf("unexpected listing: %v", names)
	}

	// 4. Delete
	if err := service.DeleteDocument(ctx, "notes.md"); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}
	if _, err := service.GetDocument(ctx, "notes.md"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
}

func TestService_CreateValidation(t *testing.T) {
	service := core.NewService(NewMockRepository())
	ctx := context.TODO()

	if _, err := service.CreateDocument(ctx, "   "); !errors.Is(err, core.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName for blank name, got %v", err)
	}

	if _, err := service.CreateDocument(ctx, "a.txt"); err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if _, err := service.CreateDocument(ctx, "a.txt"); !errors.Is(err, core.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"about.md", "history.txt", "notafile.ext", "no-extension"}
	for _, name := range valid {
		if _, err := core.ValidateName(name); err != nil {
			t.Errorf("expected %q to be valid, got %v", name, err)
		}
	}

	invalid := []string{"", " ", ".", "..", "../etc/passwd", "a/b.md", `a\b.md`, ".hidden", "nul\x00.md"}
	for _, name := range invalid {
		if _, err := core.ValidateName(name); !errors.Is(err, core.ErrInvalidName) {
			t.Errorf("expected %q to be rejected, got %v", name, err)
		}
	}
}

func TestService_DeleteInvalidNameIsNotFound(t *testing.T) {
	service := core.NewService(NewMockRepository())

	err := service.DeleteDocument(context.TODO(), "../outside.txt")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Watch_Unsupported(t *testing.T) {
	service := core.NewService(NewMockRepository())

	_, err := service.Watch(context.TODO())
	if err == nil {
		t.Fatal("expected error for non-watchable repo")
	}
	if err.Error() != "repository does not support watching" {
		t.Errorf("unexpected error msg: %v", err)
	}
}

func TestFormatAndContentType(t *testing.T) {
	if core.FormatOf("about.md") != core.FormatMarkdown {
		t.Error("expected .md to be markdown")
	}
	if core.FormatOf("history.txt") != core.FormatText {
		t.Error("expected .txt to be text")
	}
	if ct := core.ContentType("history.txt"); ct != "text/plain; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	if ct := core.ContentType("blob.zzunknown"); ct != "application/octet-stream" {
		t.Errorf("unexpected content type %q", ct)
	}
}
