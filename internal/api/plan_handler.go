package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/service"
)

type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs ---

// CreatePlanRequest carries a new plan. Price is a pointer so that a free
// plan (0) still passes the required check.
type CreatePlanRequest struct {
	TrainerID   string          `json:"trainerId" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Price       *float64        `json:"price" binding:"required,gte=0"`
	Duration    int             `json:"duration" binding:"required,min=1"`
	Image       string          `json:"image"`
	Category    domain.Category `json:"category" binding:"required,oneof=weight-loss muscle yoga cardio general"`
}

type PlanImageUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// --- Handler Methods ---

// GetPlans godoc
// @Summary List all plans
// @Tags Plans
// @Produce json
// @Success 200 {array} domain.Plan
// @Router /plans [get]
func (h *PlanHandler) GetPlans(c *gin.Context) {
	plans, err := h.planService.GetAll(c.Request.Context())
	if err != nil {
		abortWithUnexpected(c, "retrieve plans", err)
		return
	}
	if plans == nil {
		plans = []domain.Plan{} // Return empty JSON array, not null
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary Get one plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} domain.Plan
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.planService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUnexpected(c, "retrieve plan", err)
		return
	}
	if plan == nil {
		abortWithError(c, http.StatusNotFound, "plan not found")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreatePlan godoc
// @Summary Publish a plan
// @Description The trainer name is copied from the trainer's account.
// @Tags Plans
// @Accept json
// @Produce json
// @Param plan body CreatePlanRequest true "Plan details"
// @Success 201 {object} domain.Plan
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Trainer not found"
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), domain.PlanInput{
		TrainerID:   req.TrainerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Duration:    req.Duration,
		Image:       req.Image,
		Category:    req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainerNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithUnexpected(c, "create plan", err)
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan godoc
// @Summary Update a plan (not implemented)
// @Tags Plans
// @Param id path string true "Plan ID"
// @Failure 501 {object} gin.H
// @Router /plans/{id} [patch]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	// The body is not read until updates exist
	plan, err := h.planService.Update(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		if errors.Is(err, service.ErrNotImplemented) {
			abortWithError(c, http.StatusNotImplemented, "plan updates are not implemented")
		} else {
			abortWithUnexpected(c, "update plan", err)
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan godoc
// @Summary Delete a plan
// @Description Existing subscriptions stay but no longer show the plan.
// @Tags Plans
// @Param id path string true "Plan ID"
// @Success 204
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.planService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUnexpected(c, "delete plan", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTrainerPlans godoc
// @Summary List a trainer's plans
// @Tags Plans
// @Produce json
// @Param trainerId path string true "Trainer ID"
// @Success 200 {array} domain.Plan
// @Router /trainers/{trainerId}/plans [get]
func (h *PlanHandler) GetTrainerPlans(c *gin.Context) {
	plans, err := h.planService.GetByTrainer(c.Request.Context(), c.Param("trainerId"))
	if err != nil {
		abortWithUnexpected(c, "retrieve trainer plans", err)
		return
	}
	if plans == nil {
		plans = []domain.Plan{}
	}
	c.JSON(http.StatusOK, plans)
}

// CreatePlanImageUpload godoc
// @Summary Get a presigned URL for a plan cover image
// @Tags Plans
// @Accept json
// @Produce json
// @Param trainerId path string true "Trainer ID"
// @Param upload body PlanImageUploadRequest true "File details"
// @Success 201 {object} domain.PlanImageUpload
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 503 {object} gin.H "Image storage disabled"
// @Router /trainers/{trainerId}/plan-images [post]
func (h *PlanHandler) CreatePlanImageUpload(c *gin.Context) {
	var req PlanImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	upload, err := h.planService.CreateImageUpload(c.Request.Context(), c.Param("trainerId"), req.FileName, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainerNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrStorageUnavailable):
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		default:
			abortWithUnexpected(c, "prepare image upload", err)
		}
		return
	}
	c.JSON(http.StatusCreated, upload)
}
