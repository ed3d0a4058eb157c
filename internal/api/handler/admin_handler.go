package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
	"github.com/shopwise/shopping-assistant/internal/core/ports"
)

// AdminHandler serves the user directory. Every route here sits behind the
// Auth and RBAC(admin) middleware.
type AdminHandler struct {
	users ports.UserService
}

func NewAdminHandler(users ports.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

// ListUsers returns every user, password hashes stripped.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// GetUser returns a single user by id.
//
// @Summary      Get user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// UpdateUser applies a partial update to a user record.
//
// @Summary      Update user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  updateUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	actorID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.users.UpdateUser(c.Request().Context(), c.Param("id"), domain.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}, actorID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateUserResponse{
		Message: "user updated successfully",
		User:    user,
	})
}

// DeleteUser permanently removes a user. Self-deletion is refused.
//
// @Summary      Delete user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actorID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.users.DeleteUser(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

// Stats returns aggregate counts and the five newest users.
//
// @Summary      User stats
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	result, err := h.users.GetStats(c.Request().Context())
	if err != nil {
		return err
	}
	latest := result.LatestUsers
	if latest == nil {
		latest = []domain.User{}
	}
	return c.JSON(http.StatusOK, statsResponse{
		Stats:       result.Stats,
		LatestUsers: latest,
	})
}
