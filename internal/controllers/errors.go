package controllers

import (
	"errors"
	"net/http"

	"github.com/openfiscal/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"you must set a code for the fund"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
