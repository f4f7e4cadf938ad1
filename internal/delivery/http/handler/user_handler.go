package handler

import (
	"encoding/json"
	"net/http"

	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/usecase"
	"dental-care-server/pkg/response"
	"dental-care-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrEmailAlreadyExists {
			response.Error(w, http.StatusConflict, "Email already exists", nil)
			return
		}
		response.InternalServerError(w, "Failed to create user")
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// PromoteToAdmin grants the admin role. Admin-only route.
func (h *UserHandler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.userUsecase.PromoteToAdmin(r.Context(), userID); err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to promote user")
		return
	}

	response.Success(w, http.StatusOK, "User promoted to admin successfully", nil)
}

// GetAdminStatus reports {"isAdmin": bool} for the email path segment.
func (h *UserHandler) GetAdminStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	status, err := h.userUsecase.AdminStatus(r.Context(), vars["email"])
	if err != nil {
		response.InternalServerError(w, "Failed to check admin status")
		return
	}

	response.JSON(w, http.StatusOK, status)
}

// IssueToken returns {"accessToken": ...} for ?email= when a user
// record exists, or 403 with an empty token otherwise.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	token, err := h.userUsecase.IssueToken(r.Context(), email)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.JSON(w, http.StatusForbidden, dto.TokenResponse{AccessToken: ""})
			return
		}
		response.InternalServerError(w, "Failed to issue token")
		return
	}

	response.JSON(w, http.StatusOK, token)
}
