package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-chi/chi/v5"
)

// listUsers handles GET /users.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing users")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// getUserByID handles GET /users/{id}. Non-integer ids and unknown ids both
// produce an empty 404: the route only exists for integer ids.
func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := userIDFromURL(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Err(err).Int64("user_id", id).Msg("error getting user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// createUser handles POST /users.
//
// The request body carries name and email; any client-supplied id is
// discarded. Validation failures produce a 400 whose body lists only the
// violation messages. On success the created record is returned with 201 and
// a Location header pointing at the new resource.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessagesResponse{Errors: []string{"Invalid JSON was passed."}}, http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.Create(r.Context(), user)
	if err != nil {
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			utils.WriteJSON(w, models.MessagesResponse{Errors: validationErr.Messages()}, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error creating user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("user_id", created.ID).Msg("user created")

	w.Header().Set("Location", fmt.Sprintf("/users/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateUser handles PUT /users/{id}.
//
// Order of checks follows the API contract: unknown ids return an empty 404
// before the body is validated; validation failures return a 400 whose body
// lists field and message pairs; otherwise name and email are overwritten in
// place and the updated record is returned.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := userIDFromURL(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if _, err := h.services.UserService.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Err(err).Int64("user_id", id).Msg("error looking up user before update")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ViolationsResponse{
			Errors: []models.Violation{{Message: "Invalid JSON was passed."}},
		}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.Update(r.Context(), id, user)
	if err != nil {
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			utils.WriteJSON(w, models.ViolationsResponse{Errors: validationErr.Violations}, http.StatusBadRequest)
			return
		}
		if errors.Is(err, store.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Err(err).Int64("user_id", id).Msg("error updating user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("user_id", id).Msg("user updated")

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteUser handles DELETE /users/{id}.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := userIDFromURL(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Err(err).Int64("user_id", id).Msg("error deleting user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("user_id", id).Msg("user deleted")

	w.WriteHeader(http.StatusNoContent)
}

// userIDFromURL extracts and parses the {id} route parameter.
func userIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
