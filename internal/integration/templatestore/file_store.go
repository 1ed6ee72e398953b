// Package templatestore persists the recurring template collection as a
// single JSON document with load-all / save-all semantics.
package templatestore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// templateRecord is the on-disk shape of one template.
type templateRecord struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
	CategoryID        uuid.UUID       `json:"categoryId"`
	DayOfMonth        int             `json:"dayOfMonth"`
	Type              string          `json:"type"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	LastProcessedDate *time.Time      `json:"lastProcessedDate,omitempty"`
}

// fileStore implements adapter.RecurringTemplateStore on a JSON file.
type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a template store backed by the given file path.
func NewFileStore(path string) adapter.RecurringTemplateStore {
	return &fileStore{path: path}
}

// LoadAll reads the full template list. A missing file yields an empty list.
// A file that cannot be decoded is discarded wholesale: the store recovers
// by starting empty rather than trusting part of the collection.
func (s *fileStore) LoadAll(ctx context.Context) ([]*entity.RecurringTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*entity.RecurringTemplate{}, nil
		}
		return nil, fmt.Errorf("failed to read template store: %w", err)
	}

	var records []templateRecord
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("Recurring template store is corrupt, starting empty",
			"path", s.path,
			"error", err,
		)
		return []*entity.RecurringTemplate{}, nil
	}

	templates := make([]*entity.RecurringTemplate, len(records))
	for i, r := range records {
		templates[i] = &entity.RecurringTemplate{
			ID:                r.ID,
			Name:              r.Name,
			Amount:            r.Amount,
			CategoryID:        r.CategoryID,
			DayOfMonth:        entity.ClampDayOfMonth(r.DayOfMonth),
			Type:              entity.TransactionType(r.Type),
			IsActive:          r.IsActive,
			CreatedAt:         r.CreatedAt,
			UpdatedAt:         r.UpdatedAt,
			LastProcessedDate: r.LastProcessedDate,
		}
	}
	return templates, nil
}

// SaveAll atomically replaces the full template list: the new document is
// written to a sibling temp file and renamed over the old one.
func (s *fileStore) SaveAll(ctx context.Context, templates []*entity.RecurringTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]templateRecord, len(templates))
	for i, t := range templates {
		records[i] = templateRecord{
			ID:                t.ID,
			Name:              t.Name,
			Amount:            t.Amount,
			CategoryID:        t.CategoryID,
			DayOfMonth:        t.DayOfMonth,
			Type:              string(t.Type),
			IsActive:          t.IsActive,
			CreatedAt:         t.CreatedAt,
			UpdatedAt:         t.UpdatedAt,
			LastProcessedDate: t.LastProcessedDate,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode template store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create template store directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write template store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace template store: %w", err)
	}
	return nil
}
