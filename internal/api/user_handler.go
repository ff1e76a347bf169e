package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type SubscribeRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

// Follow godoc
// @Summary Follow a trainer
// @Description Idempotent; following an already-followed trainer changes nothing.
// @Tags Users
// @Param userId path string true "User ID"
// @Param trainerId path string true "Trainer ID"
// @Success 204
// @Router /users/{userId}/following/{trainerId} [put]
func (h *UserHandler) Follow(c *gin.Context) {
	if err := h.userService.Follow(c.Request.Context(), c.Param("userId"), c.Param("trainerId")); err != nil {
		abortWithUnexpected(c, "follow trainer", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Unfollow godoc
// @Summary Unfollow a trainer
// @Tags Users
// @Param userId path string true "User ID"
// @Param trainerId path string true "Trainer ID"
// @Success 204
// @Router /users/{userId}/following/{trainerId} [delete]
func (h *UserHandler) Unfollow(c *gin.Context) {
	if err := h.userService.Unfollow(c.Request.Context(), c.Param("userId"), c.Param("trainerId")); err != nil {
		abortWithUnexpected(c, "unfollow trainer", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSubscriptions godoc
// @Summary List the plans a user is subscribed to
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.Plan
// @Router /users/{userId}/subscriptions [get]
func (h *UserHandler) GetSubscriptions(c *gin.Context) {
	plans, err := h.userService.GetSubscriptions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithUnexpected(c, "retrieve subscriptions", err)
		return
	}
	if plans == nil {
		plans = []domain.Plan{}
	}
	c.JSON(http.StatusOK, plans)
}

// Subscribe godoc
// @Summary Subscribe a user to a plan
// @Description Repeat subscriptions are recorded again.
// @Tags Users
// @Accept json
// @Param userId path string true "User ID"
// @Param subscription body SubscribeRequest true "Plan to subscribe to"
// @Success 204
// @Router /users/{userId}/subscriptions [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.userService.Subscribe(c.Request.Context(), c.Param("userId"), req.PlanID); err != nil {
		abortWithUnexpected(c, "subscribe", err)
		return
	}
	c.Status(http.StatusNoContent)
}
