package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"poimap/auth"
	"poimap/errs"
	"poimap/models"
	"poimap/repository"
)

// placeholderPassword is hashed into accounts created by an admin. Non-admin
// logins do not check the password, so the value only has to be non-empty.
const placeholderPassword = "nopass"

type UserHandler struct {
	Repo repository.UserRepository
}

// ListUsers returns every account. Admin only; password digests are stripped.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	users, err := h.Repo.ListUsers()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if users == nil {
		users = []models.User{}
	}
	for i := range users {
		users[i].Password = "" // hide password hash
	}

	writeJSON(w, http.StatusOK, users)
}

// CreateUser registers a non-privileged account. The role is always forced
// to "user" and the password is a fixed placeholder.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	digest, err := auth.HashPassword(placeholderPassword)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	user := &models.User{
		Username: req.Username,
		Password: digest,
		Role:     models.RoleUser,
	}
	if err := h.Repo.CreateUser(user); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			writeError(w, http.StatusConflict, "username already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	user.Password = "" // hide password hash
	writeJSON(w, http.StatusCreated, user)
}

// DeleteUser removes an account and cascades to its POIs. Admin only; an
// admin cannot delete its own account.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request, id string) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if ident.Role != models.RoleAdmin {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if userID == ident.UserID {
		writeError(w, http.StatusBadRequest, "self delete forbidden")
		return
	}

	if err := h.Repo.DeleteUser(userID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// requireAdmin writes the failure response and returns false unless the
// caller holds the admin role.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}
	if ident.Role != models.RoleAdmin {
		w.WriteHeader(http.StatusForbidden)
		return false
	}
	return true
}
