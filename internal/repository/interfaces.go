package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/milestones/internal/domain"
)

// ErrDatasetNotFound is returned when no dataset matches an ID or ID prefix.
var ErrDatasetNotFound = errors.New("dataset not found")

type DatasetRepo interface {
	// Create stores the dataset header and its rows.
	Create(ctx context.Context, d *domain.Dataset, rows []domain.RawRow) error
	GetByID(ctx context.Context, id string) (*domain.Dataset, error)
	// Resolve finds a dataset by full ID or by a unique ID prefix.
	Resolve(ctx context.Context, idOrPrefix string) (*domain.Dataset, error)
	List(ctx context.Context) ([]*domain.Dataset, error)
	LoadTable(ctx context.Context, id string) (*domain.Table, error)
	UpdateMapping(ctx context.Context, id string, m *domain.ColumnMapping) error
	Delete(ctx context.Context, id string) error
}
