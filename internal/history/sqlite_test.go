package history

import (
	"path/filepath"
	"testing"

	"github.com/kmallory/fruitdata/internal/item"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "fruits.history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecent_Empty(t *testing.T) {
	db := openTestDB(t)

	events, err := db.Recent(0)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Recent() returned %d events, want 0", len(events))
	}
}

func TestRecordAdd(t *testing.T) {
	db := openTestDB(t)

	kiwi := item.Item{Name: "Kiwi", Length: 3, Width: 2, Height: 2}
	if err := db.RecordAdd(kiwi); err != nil {
		t.Fatalf("RecordAdd() error = %v", err)
	}

	events, err := db.Recent(0)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Recent() returned %d events, want 1", len(events))
	}

	e := events[0]
	if e.Op != OpAdd {
		t.Errorf("Op = %q, want %q", e.Op, OpAdd)
	}
	if e.Name != "Kiwi" || e.Length != 3 || e.Width != 2 || e.Height != 2 {
		t.Errorf("event = %+v, want Kiwi 3x2x2", e)
	}
	if e.ID == "" {
		t.Error("event ID is empty")
	}
	if e.RecordedAt.IsZero() {
		t.Error("RecordedAt is zero")
	}
}

func TestRecordRemove(t *testing.T) {
	db := openTestDB(t)

	if err := db.RecordRemove("Banana", 1); err != nil {
		t.Fatalf("RecordRemove() error = %v", err)
	}

	events, err := db.Recent(0)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Recent() returned %d events, want 1", len(events))
	}

	e := events[0]
	if e.Op != OpRemove {
		t.Errorf("Op = %q, want %q", e.Op, OpRemove)
	}
	if e.Name != "Banana" || e.Removed != 1 {
		t.Errorf("event = %+v, want Banana removed=1", e)
	}
}

func TestRecent_NewestFirstAndLimit(t *testing.T) {
	db := openTestDB(t)

	names := []string{"Kiwi", "Mango", "Lime"}
	for _, name := range names {
		if err := db.RecordAdd(item.Item{Name: name, Length: 1, Width: 1, Height: 1}); err != nil {
			t.Fatalf("RecordAdd(%s) error = %v", name, err)
		}
	}

	events, err := db.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Recent(2) returned %d events, want 2", len(events))
	}
	if events[0].Name != "Lime" || events[1].Name != "Mango" {
		t.Errorf("Recent(2) order = %s, %s; want Lime, Mango", events[0].Name, events[1].Name)
	}
}

func TestOpen_Reopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruits.history.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := db.RecordAdd(item.Item{Name: "Kiwi", Length: 1, Width: 1, Height: 1}); err != nil {
		t.Fatalf("RecordAdd() error = %v", err)
	}
	db.Close()

	db2, err := Open(path)
	if err != nil {
		t.Fatalf("Open() second time error = %v", err)
	}
	defer db2.Close()

	events, err := db2.Recent(0)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("Recent() after reopen returned %d events, want 1", len(events))
	}
}
