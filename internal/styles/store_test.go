package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestEnsureDefaults_WritesFilesOnce(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}

	for _, name := range []string{"ieee", "nature", "apa"} {
		if _, err := os.Stat(filepath.Join(dir, name+".json")); err != nil {
			t.Errorf("expected %s.json: %v", name, err)
		}
	}

	// An existing file survives a second call untouched.
	marker := filepath.Join(dir, "ieee.json")
	if err := os.WriteFile(marker, []byte(`{"name":"edited"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := store.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults (second): %v", err)
	}
	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"edited"}` {
		t.Error("EnsureDefaults overwrote an existing file")
	}
}

func TestGet_DefaultStyle(t *testing.T) {
	store := newTestStore(t)
	desc, source, err := store.Get("ieee")
	if err != nil {
		t.Fatalf("Get(ieee): %v", err)
	}
	if source != SourceDefault {
		t.Errorf("source = %q", source)
	}
	if desc.Name != "IEEE" || desc.FontFamily != "Times New Roman" {
		t.Errorf("unexpected descriptor: %+v", desc)
	}
	if desc.ColumnCount != 2 {
		t.Errorf("ieee columns = %d", desc.ColumnCount)
	}
}

func TestGet_DefaultReturnsCopy(t *testing.T) {
	store := newTestStore(t)
	desc, _, err := store.Get("nature")
	if err != nil {
		t.Fatal(err)
	}
	for k := range desc.HeaderStyles {
		delete(desc.HeaderStyles, k)
	}
	again, _, err := store.Get("nature")
	if err != nil {
		t.Fatal(err)
	}
	if len(again.HeaderStyles) == 0 {
		t.Error("mutating a returned descriptor leaked into the store")
	}
}

func TestGet_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, _, err := store.Get("chicago")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("expected ErrStyleNotFound, got %v", err)
	}
}

func TestPutGetDelete_CustomStyle(t *testing.T) {
	store := newTestStore(t)
	custom := Descriptor{
		Name:        "lab-notes",
		Description: "House style",
		FontFamily:  "Helvetica",
		FontSize:    "11pt",
		LineSpacing: "1.2",
	}
	if err := store.Put("lab-notes", custom); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, source, err := store.Get("lab-notes")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if source != SourceCustom {
		t.Errorf("source = %q", source)
	}
	if got.FontFamily != "Helvetica" || got.LineSpacing != "1.2" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if err := store.Delete("lab-notes"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, err := store.Get("lab-notes"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestDelete_DefaultRejected(t *testing.T) {
	store := newTestStore(t)
	if err := store.Delete("apa"); !errors.Is(err, ErrDefaultStyle) {
		t.Fatalf("expected ErrDefaultStyle, got %v", err)
	}
}

func TestDelete_MissingCustom(t *testing.T) {
	store := newTestStore(t)
	if err := store.Delete("never-existed"); !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("expected ErrStyleNotFound, got %v", err)
	}
}

func TestDerive(t *testing.T) {
	store := newTestStore(t)
	desc, err := store.Derive("ieee-wide", "ieee")
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if desc.Name != "ieee-wide" {
		t.Errorf("name = %q", desc.Name)
	}
	if desc.Description != "Custom style based on ieee" {
		t.Errorf("description = %q", desc.Description)
	}
	if desc.FontFamily != "Times New Roman" {
		t.Errorf("base fields not carried: %+v", desc)
	}

	got, source, err := store.Get("ieee-wide")
	if err != nil {
		t.Fatalf("Get derived: %v", err)
	}
	if source != SourceCustom {
		t.Errorf("source = %q", source)
	}
	if got.Name != "ieee-wide" {
		t.Errorf("persisted name = %q", got.Name)
	}
}

func TestDerive_ConsistentUnderConcurrentPut(t *testing.T) {
	store := newTestStore(t)

	// Writers replace the base with correlated field pairs; every derived
	// copy must carry a matching pair, never a torn mix of two writes.
	versions := map[string]string{"Helvetica": "11pt", "Georgia": "12pt"}
	if err := store.Put("base", Descriptor{Name: "base", FontFamily: "Helvetica", FontSize: "11pt"}); err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			for family, size := range versions {
				store.Put("base", Descriptor{Name: "base", FontFamily: family, FontSize: size})
			}
		}
	}()

	for i := 0; i < 50; i++ {
		desc, err := store.Derive(fmt.Sprintf("derived-%d", i), "base")
		if err != nil {
			t.Fatalf("Derive: %v", err)
		}
		if versions[desc.FontFamily] != desc.FontSize {
			t.Fatalf("torn snapshot: family %q with size %q", desc.FontFamily, desc.FontSize)
		}
	}
	<-done
}

func TestDerive_UnknownBase(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Derive("x", "chicago"); !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("expected ErrStyleNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	store := newTestStore(t)
	if err := store.Put("lab-notes", Descriptor{Name: "Lab Notes", Description: "House style"}); err != nil {
		t.Fatal(err)
	}
	// A nameless custom file falls back to its file stem and a stock
	// description.
	if err := store.Put("bare", Descriptor{}); err != nil {
		t.Fatal(err)
	}

	listing, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	for _, name := range []string{"ieee", "nature", "apa"} {
		entry, ok := listing[name]
		if !ok {
			t.Errorf("missing default %q", name)
			continue
		}
		if entry.Source != SourceDefault {
			t.Errorf("%s source = %q", name, entry.Source)
		}
	}

	custom, ok := listing["lab-notes"]
	if !ok {
		t.Fatal("missing custom style in listing")
	}
	if custom.Source != SourceCustom || custom.Name != "Lab Notes" {
		t.Errorf("custom entry: %+v", custom)
	}

	bare := listing["bare"]
	if bare.Name != "bare" || bare.Description != "Custom style" {
		t.Errorf("fallback entry: %+v", bare)
	}
}

func TestList_ShadowedCustomHidden(t *testing.T) {
	store := newTestStore(t)
	if err := store.Put("ieee", Descriptor{Name: "not ieee"}); err != nil {
		t.Fatal(err)
	}
	listing, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if listing["ieee"].Source != SourceDefault {
		t.Error("default must shadow a same-named custom file")
	}
	if listing["ieee"].Name == "not ieee" {
		t.Error("custom file leaked over the default")
	}
}
