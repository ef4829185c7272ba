package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/cariesreview/catalog/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudyRepository           *StudyRepository
	CariesDataRepository      *CariesDataRepository
	ExtractionNoteRepository  *ExtractionNoteRepository
	ProjectMetadataRepository *ProjectMetadataRepository
	AggregateRepository       *AggregateRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		StudyRepository:           NewStudyRepository(conn),
		CariesDataRepository:      NewCariesDataRepository(conn),
		ExtractionNoteRepository:  NewExtractionNoteRepository(conn),
		ProjectMetadataRepository: NewProjectMetadataRepository(conn),
		AggregateRepository:       NewAggregateRepository(conn),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func nullableString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
