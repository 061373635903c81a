package usecase

import (
	"fmt"

	"skill-summarizer-backend/pkg/apperror"
	"skill-summarizer-backend/pkg/objectid"
	"skill-summarizer-backend/pkg/validation"
)

func validationError(err error) *apperror.AppError {
	return apperror.Validation(validation.FormatValidationErrors(err))
}

func notFound(resource string, id objectid.ID) *apperror.AppError {
	return apperror.NotFound(fmt.Sprintf("%s %s not found", resource, id))
}
