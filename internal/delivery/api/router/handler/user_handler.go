package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the caller's profile and the admin user back-office.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// SetRewardPointsRequest is the body of the points endpoint.
type SetRewardPointsRequest struct {
	RewardPoints *int `json:"rewardPoints" validate:"required"`
}

// GetProfile returns the signed-in user.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "")
}

// UpdateProfile changes the caller's own username, mobile number or picture.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Profile updated")
}

// ListUsers pages through every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	output, err := h.userUC.ListUsers(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListResponse[*UserResponse]{
		Items:  mapSlice(output.Users, newUserResponse),
		Total:  output.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, "")
}

// GetUser returns one account.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "")
}

// UpdateUser edits an account, including its role.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "User updated")
}

// DeleteUser removes an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	h.logger.InfoContext(c.Request().Context(), "User deleted", slog.String("user_id", id.String()))

	return response.Success(c, http.StatusOK, nil, "User deleted")
}

// SetRewardPoints overwrites the reward balance.
func (h *UserHandler) SetRewardPoints(c echo.Context) error {
	id, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	var req SetRewardPointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid reward points input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userUC.SetRewardPoints(c.Request().Context(), id, *req.RewardPoints)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Reward points updated")
}
