package service

import (
	"database/sql"

	"github.com/alexanderramin/milestones/internal/repository"
)

func repositoryFor(database *sql.DB) repository.DatasetRepo {
	return repository.NewSQLiteDatasetRepo(database)
}
