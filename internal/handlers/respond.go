package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pos_manager/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy to HTTP statuses: client and
// business errors are 400, missing entities 404, anything else 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var (
		validationErr   *models.ValidationError
		notFoundErr     *models.NotFoundError
		stockErr        *models.InsufficientStockError
		pointsErr       *models.InsufficientPointsError
		paymentErr      *models.PaymentFailedError
		businessRuleErr *models.BusinessError
	)
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &stockErr),
		errors.As(err, &pointsErr),
		errors.As(err, &paymentErr),
		errors.As(err, &businessRuleErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	}

	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}
