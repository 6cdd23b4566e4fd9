package service

import (
	"context"
	"io"

	"github.com/alexanderramin/milestones/internal/app"
	"github.com/alexanderramin/milestones/internal/domain"
)

type TimelineService interface {
	app.BuildTimelineUseCase
	app.InspectSourceUseCase
}

type DatasetService interface {
	app.ImportDatasetUseCase
	List(ctx context.Context) ([]*domain.Dataset, error)
	// Get accepts a full ID or a unique prefix.
	Get(ctx context.Context, idOrPrefix string) (*domain.Dataset, error)
	// SaveMapping overlays m on the dataset's current mapping and stores the
	// result after checking it against the stored headers.
	SaveMapping(ctx context.Context, idOrPrefix string, m domain.ColumnMapping) (*domain.Dataset, error)
	ResetMapping(ctx context.Context, idOrPrefix string) error
	Delete(ctx context.Context, idOrPrefix string) error
}

type ExportService interface {
	app.ExportTimelineUseCase
	// Template writes the starter table as "csv" or "xlsx".
	Template(ctx context.Context, format string, w io.Writer) error
}
