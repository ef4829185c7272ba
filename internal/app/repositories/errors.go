package repositories

import (
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
	"github.com/cariesreview/catalog/internal/pkg/dberrors"
)

type constraintViolation struct {
	field   string
	message string
}

// constraintFields maps unique and foreign key constraints to the field
// reported to the caller.
var constraintFields = map[string]constraintViolation{
	"studies_study_id_key": {
		field: "study_id", message: "a study with this identifier already exists",
	},
	"caries_data_stratum_key": {
		field:   "age_category",
		message: "this study already reports a data point for the same sex, age category and socioeconomic status",
	},
	"caries_data_study_id_fkey": {
		field: "study", message: "study does not exist",
	},
	"extraction_notes_study_id_fkey": {
		field: "study", message: "study does not exist",
	},
}

// translateWriteError turns constraint violations raised by PostgreSQL into
// validation errors naming the offending field. It reports false for any
// other error.
func translateWriteError(err error) (error, bool) {
	pgErr, ok := dberrors.AsPgError(err)
	if !ok {
		return nil, false
	}

	switch pgErr.Code {
	case dberrors.CodeUniqueViolation, dberrors.CodeForeignKeyViolation:
		if v, ok := constraintFields[pgErr.ConstraintName]; ok {
			return apperrors.NewValidationError(v.field, v.message), true
		}
		return apperrors.NewValidationError(pgErr.ConstraintName, pgErr.Message), true
	case dberrors.CodeCheckViolation:
		if column, ok := dberrors.CheckViolationColumn(err); ok {
			return apperrors.NewValidationError(column, "value is out of range or not a valid choice"), true
		}
	case dberrors.CodeNotNullViolation:
		if column, ok := dberrors.NotNullViolationColumn(err); ok {
			return apperrors.NewValidationError(column, "this field is required"), true
		}
	}
	return nil, false
}
