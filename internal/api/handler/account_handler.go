package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

// AccountHandler serves the role-gated dashboard endpoints.
type AccountHandler struct {
	users ports.UserRepository
}

func NewAccountHandler(users ports.UserRepository) *AccountHandler {
	return &AccountHandler{users: users}
}

type vendorDashboardResponse struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	BusinessName string `json:"business_name,omitempty"`
}

// VendorDashboard returns the vendor's account summary. Reachable only by
// vendor and admin sessions via the route guard.
//
// @Summary      Vendor dashboard
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  vendorDashboardResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/vendor/dashboard [get]
func (h *AccountHandler) VendorDashboard(c echo.Context) error {
	userID, username, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	resp := vendorDashboardResponse{Username: username, Role: role}
	if user, err := h.users.FindByID(c.Request().Context(), userID); err == nil {
		resp.BusinessName = user.BusinessName
	}

	return c.JSON(http.StatusOK, resp)
}

// ListUsers returns every registered account, without password hashes.
// Admin only via the route guard.
//
// @Summary      List accounts
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
