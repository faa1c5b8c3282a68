package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerationRecord is one completed deck generation.
type GenerationRecord struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	Style      string `json:"style"`
	SlideCount int    `json:"slideCount"`
	OutputPath string `json:"outputPath"`
	CreatedAt  int64  `json:"createdAt"`
}

// HistoryService records completed generations and answers output-name
// collision queries.
type HistoryService struct {
	db *sql.DB
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(db *sql.DB) *HistoryService {
	return &HistoryService{db: db}
}

// SaveGeneration records a completed generation.
func (s *HistoryService) SaveGeneration(rec GenerationRecord) (GenerationRecord, error) {
	if s.db == nil {
		return rec, fmt.Errorf("database connection is nil")
	}
	if rec.Topic == "" {
		return rec, fmt.Errorf("topic is required")
	}
	if rec.OutputPath == "" {
		return rec, fmt.Errorf("output path is required")
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().UnixMilli()
	}

	_, err := s.db.Exec(`
		INSERT INTO generation_history (id, topic, style, slide_count, output_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Topic, rec.Style, rec.SlideCount, rec.OutputPath, rec.CreatedAt)
	if err != nil {
		return rec, fmt.Errorf("failed to save generation record: %w", err)
	}
	return rec, nil
}

// ListRecent returns the most recent generations, newest first.
func (s *HistoryService) ListRecent(limit int) ([]GenerationRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, topic, style, slide_count, output_path, created_at
		FROM generation_history
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generation history: %w", err)
	}
	defer rows.Close()

	var records []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		if err := rows.Scan(&rec.ID, &rec.Topic, &rec.Style, &rec.SlideCount, &rec.OutputPath, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// HasOutputPath reports whether a generation already produced this path.
func (s *HistoryService) HasOutputPath(path string) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("database connection is nil")
	}
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM generation_history WHERE output_path = ?", path).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check output path: %w", err)
	}
	return count > 0, nil
}
