package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/service"
)

const progressDateLayout = "2006-01-02"

type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// RecordProgressRequest carries one measurement. Date is YYYY-MM-DD and defaults to today.
type RecordProgressRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	BMI    float64 `json:"bmi" binding:"gte=0"`
	Date   string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// GetProgress godoc
// @Summary List a user's progress log
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.Progress
// @Router /users/{userId}/progress [get]
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	entries, err := h.progressService.GetProgress(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithUnexpected(c, "retrieve progress", err)
		return
	}
	if entries == nil {
		entries = []domain.Progress{}
	}
	c.JSON(http.StatusOK, entries)
}

// RecordProgress godoc
// @Summary Log a weight and BMI measurement
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param entry body RecordProgressRequest true "Measurement"
// @Success 201 {object} domain.Progress
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{userId}/progress [post]
func (h *ProgressHandler) RecordProgress(c *gin.Context) {
	var req RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	input := domain.ProgressInput{UserID: c.Param("userId"), Weight: req.Weight, BMI: req.BMI}
	if req.Date != "" {
		date, err := time.Parse(progressDateLayout, req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
			return
		}
		input.Date = date
	}

	entry, err := h.progressService.Record(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithUnexpected(c, "record progress", err)
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}
