package services

import (
	"errors"

	"pos_manager/internal/models"
)

func isNotFound(err error) bool {
	var notFoundErr *models.NotFoundError
	return errors.As(err, &notFoundErr)
}
