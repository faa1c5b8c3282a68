package database

import (
	"testing"
)

func setupTestHistoryService(t *testing.T) *HistoryService {
	t.Helper()
	db, err := InitDB(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewHistoryService(db)
}

func TestSaveAndListGenerations(t *testing.T) {
	svc := setupTestHistoryService(t)

	recs := []GenerationRecord{
		{Topic: "Telemedicine in tier-2 cities", Style: "bcg", SlideCount: 3, OutputPath: "/out/telemedicine_BCG_3slides.pptx", CreatedAt: 100},
		{Topic: "Fleet electrification", Style: "mckinsey", SlideCount: 8, OutputPath: "/out/fleet_McKinsey_8slides.pptx", CreatedAt: 200},
	}
	for _, rec := range recs {
		saved, err := svc.SaveGeneration(rec)
		if err != nil {
			t.Fatalf("SaveGeneration failed: %v", err)
		}
		if saved.ID == "" {
			t.Error("saved record has no ID")
		}
	}

	got, err := svc.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Newest first.
	if got[0].Topic != "Fleet electrification" {
		t.Errorf("first record = %q, want the newest", got[0].Topic)
	}
}

func TestSaveGenerationValidation(t *testing.T) {
	svc := setupTestHistoryService(t)

	if _, err := svc.SaveGeneration(GenerationRecord{OutputPath: "/out/x.pptx"}); err == nil {
		t.Error("missing topic should be rejected")
	}
	if _, err := svc.SaveGeneration(GenerationRecord{Topic: "x"}); err == nil {
		t.Error("missing output path should be rejected")
	}
}

func TestSaveGenerationFillsDefaults(t *testing.T) {
	svc := setupTestHistoryService(t)

	saved, err := svc.SaveGeneration(GenerationRecord{
		Topic:      "Cold-chain logistics",
		Style:      "bain",
		SlideCount: 5,
		OutputPath: "/out/cold_chain_Bain_5slides.pptx",
	})
	if err != nil {
		t.Fatalf("SaveGeneration failed: %v", err)
	}
	if saved.ID == "" {
		t.Error("ID should default to a fresh UUID")
	}
	if saved.CreatedAt == 0 {
		t.Error("CreatedAt should default to now")
	}
}

func TestHasOutputPath(t *testing.T) {
	svc := setupTestHistoryService(t)

	path := "/out/deck_BCG_3slides.pptx"
	if _, err := svc.SaveGeneration(GenerationRecord{Topic: "deck", Style: "bcg", SlideCount: 3, OutputPath: path}); err != nil {
		t.Fatalf("SaveGeneration failed: %v", err)
	}

	exists, err := svc.HasOutputPath(path)
	if err != nil {
		t.Fatalf("HasOutputPath failed: %v", err)
	}
	if !exists {
		t.Error("saved path should be reported as taken")
	}

	exists, err = svc.HasOutputPath("/out/other.pptx")
	if err != nil {
		t.Fatalf("HasOutputPath failed: %v", err)
	}
	if exists {
		t.Error("unknown path should be reported as free")
	}
}

func TestListRecentLimit(t *testing.T) {
	svc := setupTestHistoryService(t)

	for i := 0; i < 5; i++ {
		_, err := svc.SaveGeneration(GenerationRecord{
			Topic:      "topic",
			Style:      "mckinsey",
			SlideCount: 5,
			OutputPath: "/out/deck.pptx",
			CreatedAt:  int64(i + 1),
		})
		if err != nil {
			t.Fatalf("SaveGeneration failed: %v", err)
		}
	}

	got, err := svc.ListRecent(3)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d records, want 3", len(got))
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	db, err := InitDB(dir)
	if err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	db.Close()

	db, err = InitDB(dir)
	if err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("failed to count migrations: %v", err)
	}
	if count != len(GetMigrations()) {
		t.Errorf("schema_migrations has %d rows, want %d", count, len(GetMigrations()))
	}
}
