package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecolife/internal/plant"
	"ecolife/internal/report"
	"ecolife/internal/session"
	"ecolife/internal/workorder"
)

var (
	badRequest = []error{
		plant.ErrTypeRequired,
		plant.ErrUnknownNonConformity,
		plant.ErrUnknownChecklistItem,
		plant.ErrNegativeHours,
		report.ErrInvalidEvaluation,
	}
	notFound = []error{
		session.ErrNoSession,
		session.ErrNoActiveWorkOrder,
		plant.ErrEquipmentNotFound,
		plant.ErrFindingNotFound,
		workorder.ErrTaskNotFound,
		workorder.ErrPhotoNotFound,
	}
	conflict = []error{
		workorder.ErrAlreadyStarted,
		workorder.ErrNotStarted,
		workorder.ErrAlreadyStopped,
		workorder.ErrInvalidStatus,
		session.ErrWorkOrderActive,
		session.ErrNothingDue,
	}
)

func matches(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

func statusFor(err error) int {
	switch {
	case matches(err, badRequest):
		return http.StatusBadRequest
	case matches(err, notFound):
		return http.StatusNotFound
	case matches(err, conflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
