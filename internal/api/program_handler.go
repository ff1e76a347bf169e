package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/service"
)

// ProgramHandler serves the workouts and diet plan of a plan.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- DTOs ---

type AddWorkoutRequest struct {
	Exercise string `json:"exercise" binding:"required"`
	Sets     int    `json:"sets" binding:"required,min=1"`
	Reps     int    `json:"reps" binding:"required,min=1"`
}

// AddDietPlanRequest uses a pointer for Calories so that 0 kcal passes the required check.
type AddDietPlanRequest struct {
	Meal     string `json:"meal" binding:"required"`
	Calories *int   `json:"calories" binding:"required,gte=0"`
}

// --- Handler Methods ---

// GetWorkouts godoc
// @Summary List the workouts of a plan
// @Tags Programs
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {array} domain.Workout
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{id}/workouts [get]
func (h *ProgramHandler) GetWorkouts(c *gin.Context) {
	workouts, err := h.programService.GetWorkouts(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithProgramError(c, "retrieve workouts", err)
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// AddWorkout godoc
// @Summary Add a workout to a plan
// @Tags Programs
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param workout body AddWorkoutRequest true "Exercise, sets and reps"
// @Success 201 {object} domain.Workout
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{id}/workouts [post]
func (h *ProgramHandler) AddWorkout(c *gin.Context) {
	var req AddWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.programService.AddWorkout(c.Request.Context(), domain.WorkoutInput{
		PlanID:   c.Param("id"),
		Exercise: req.Exercise,
		Sets:     req.Sets,
		Reps:     req.Reps,
	})
	if err != nil {
		h.abortWithProgramError(c, "add workout", err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// GetDiet godoc
// @Summary List the diet plan of a plan
// @Tags Programs
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {array} domain.DietPlan
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{id}/diet [get]
func (h *ProgramHandler) GetDiet(c *gin.Context) {
	diet, err := h.programService.GetDiet(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithProgramError(c, "retrieve diet plan", err)
		return
	}
	if diet == nil {
		diet = []domain.DietPlan{}
	}
	c.JSON(http.StatusOK, diet)
}

// AddDietPlan godoc
// @Summary Add a meal to a plan's diet
// @Tags Programs
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param meal body AddDietPlanRequest true "Meal and calories"
// @Success 201 {object} domain.DietPlan
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{id}/diet [post]
func (h *ProgramHandler) AddDietPlan(c *gin.Context) {
	var req AddDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	diet, err := h.programService.AddDietPlan(c.Request.Context(), domain.DietPlanInput{
		PlanID:   c.Param("id"),
		Meal:     req.Meal,
		Calories: *req.Calories,
	})
	if err != nil {
		h.abortWithProgramError(c, "add meal", err)
		return
	}
	c.JSON(http.StatusCreated, diet)
}

func (h *ProgramHandler) abortWithProgramError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithUnexpected(c, action, err)
	}
}
