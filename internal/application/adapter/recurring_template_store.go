// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// RecurringTemplateStore defines the serialized-list store for recurring
// templates. Semantics are load-all / save-all, not field-level: every
// mutation rewrites the whole collection.
type RecurringTemplateStore interface {
	// LoadAll returns the full template list. A corrupt persisted collection
	// is discarded and an empty list returned; it is never partially trusted.
	LoadAll(ctx context.Context) ([]*entity.RecurringTemplate, error)

	// SaveAll durably replaces the full template list.
	SaveAll(ctx context.Context, templates []*entity.RecurringTemplate) error
}
