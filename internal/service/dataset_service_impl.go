package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/milestones/internal/app"
	"github.com/alexanderramin/milestones/internal/db"
	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/importer"
	"github.com/alexanderramin/milestones/internal/repository"
	"github.com/google/uuid"
)

type datasetService struct {
	datasets repository.DatasetRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewDatasetService(datasets repository.DatasetRepo, uow db.UnitOfWork, observers ...UseCaseObserver) DatasetService {
	return &datasetService{
		datasets: datasets,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *datasetService) Import(ctx context.Context, path, sheet, name string) (ds *domain.Dataset, err error) {
	fields := map[string]any{"path": path, "sheet": sheet}
	done := track(ctx, s.observer, "import-dataset", fields)
	defer func() { done(err) }()

	table, err := importer.ReadFile(path, sheet)
	if err != nil {
		return nil, classifySourceError(err)
	}
	if len(table.Headers) == 0 {
		return nil, timelineErr(app.TimelineErrEmptyDataset, "%s has no header row", filepath.Base(path))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if table.Sheet != "" {
			name += " / " + table.Sheet
		}
	}
	source := path
	if abs, absErr := filepath.Abs(path); absErr == nil {
		source = abs
	}

	ds = &domain.Dataset{
		ID:         uuid.New().String(),
		Name:       name,
		SourcePath: source,
		Sheet:      table.Sheet,
		Headers:    table.Headers,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteDatasetRepo(tx).Create(ctx, ds, table.Rows); err != nil {
			return fmt.Errorf("storing dataset: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["dataset"] = ds.ID
	fields["rows"] = ds.RowCount
	return ds, nil
}

func (s *datasetService) List(ctx context.Context) ([]*domain.Dataset, error) {
	list, err := s.datasets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	return list, nil
}

func (s *datasetService) Get(ctx context.Context, idOrPrefix string) (*domain.Dataset, error) {
	ds, err := s.datasets.Resolve(ctx, idOrPrefix)
	if err != nil {
		return nil, classifySourceError(err)
	}
	return ds, nil
}

func (s *datasetService) SaveMapping(ctx context.Context, idOrPrefix string, m domain.ColumnMapping) (ds *domain.Dataset, err error) {
	fields := map[string]any{"dataset": idOrPrefix}
	done := track(ctx, s.observer, "save-mapping", fields)
	defer func() { done(err) }()

	ds, err = s.Get(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}

	merged := resolveMapping(ds.Headers, ds.Mapping, m)
	if errs := importer.ValidateMapping(ds.Headers, merged); len(errs) > 0 {
		return nil, mappingError(errs)
	}
	if err := s.datasets.UpdateMapping(ctx, ds.ID, &merged); err != nil {
		return nil, classifySourceError(err)
	}
	ds.Mapping = &merged
	fields["group"] = merged.GroupColumn
	return ds, nil
}

func (s *datasetService) ResetMapping(ctx context.Context, idOrPrefix string) (err error) {
	done := track(ctx, s.observer, "reset-mapping", map[string]any{"dataset": idOrPrefix})
	defer func() { done(err) }()

	ds, err := s.Get(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	if err := s.datasets.UpdateMapping(ctx, ds.ID, nil); err != nil {
		return classifySourceError(err)
	}
	return nil
}

func (s *datasetService) Delete(ctx context.Context, idOrPrefix string) (err error) {
	done := track(ctx, s.observer, "delete-dataset", map[string]any{"dataset": idOrPrefix})
	defer func() { done(err) }()

	ds, err := s.Get(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	if err := s.datasets.Delete(ctx, ds.ID); err != nil {
		return classifySourceError(err)
	}
	return nil
}
