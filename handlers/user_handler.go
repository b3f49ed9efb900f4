package handlers

import (
	"net/http"

	"github.com/Dosada05/sports-league-api/middleware"
	"github.com/Dosada05/sports-league-api/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{
		userService: us,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	err = writeJSON(w, http.StatusOK, users, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Me возвращает профиль текущего аутентифицированного пользователя.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	user, err := h.userService.GetProfileByID(r.Context(), currentUserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	err = writeJSON(w, http.StatusOK, user, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateRole меняет роль пользователя. Маршрут закрыт middleware и
// доступен только администраторам.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, err := getIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Role string `json:"role"`
	}
	err = readJSON(w, r, &input)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	updatedUser, err := h.userService.UpdateRole(r.Context(), userID, input.Role)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	err = writeJSON(w, http.StatusOK, updatedUser, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}
