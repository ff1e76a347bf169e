package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type SignupRequest struct {
	Name  string      `json:"name" binding:"required"`
	Email string      `json:"email" binding:"required,email"`
	Role  domain.Role `json:"role" binding:"required,oneof=user trainer"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UserResponse always carries a following array, never null.
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Avatar    string      `json:"avatar,omitempty"`
	Following []string    `json:"following"`
}

// --- Handler Methods ---

// Signup godoc
// @Summary Create a user or trainer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body SignupRequest true "Signup details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req.Name, req.Email, req.Role)
	if err != nil {
		abortWithUnexpected(c, "create account", err)
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// Login godoc
// @Summary Log in by email
// @Description Resolves the account registered under the email. There is no password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login email"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "No user with that email"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithUnexpected(c, "log in", err)
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// Logout godoc
// @Summary Log out
// @Description Nothing is stored server-side; the client drops its session.
// @Tags Auth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		abortWithUnexpected(c, "log out", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary Current session user
// @Description Always {"user": null}; sessions are not tracked server-side.
// @Tags Auth
// @Produce json
// @Success 200 {object} gin.H
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context())
	if err != nil {
		abortWithUnexpected(c, "load session", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": MapUserToResponse(user)})
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}

	following := user.Following
	if following == nil {
		following = []string{}
	}
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		Following: following,
	}
}
