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

type POIHandler struct {
	Repo repository.POIRepository
}

// ListPOIs returns all POIs for admins and only the caller's own otherwise.
func (h *POIHandler) ListPOIs(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var pois []models.POI
	var err error
	if ident.Role == models.RoleAdmin {
		pois, err = h.Repo.ListAllPOIs()
	} else {
		pois, err = h.Repo.ListPOIsByOwner(ident.UserID)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if pois == nil {
		pois = []models.POI{}
	}

	writeJSON(w, http.StatusOK, pois)
}

// CreatePOI inserts a POI owned by the caller. The owner is always taken
// from the verified identity, never from the request body.
func (h *POIHandler) CreatePOI(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req struct {
		Name       string  `json:"name"`
		Lat        float64 `json:"lat"`
		Lng        float64 `json:"lng"`
		CategoryID int64   `json:"category_id"`
		Note       string  `json:"note"`
		Link       string  `json:"link"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !validCoordinates(req.Lat, req.Lng) {
		writeError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}

	poi := &models.POI{
		OwnerID:       ident.UserID,
		OwnerUsername: ident.Username,
		Name:          req.Name,
		Lat:           req.Lat,
		Lng:           req.Lng,
		CategoryID:    req.CategoryID,
		Note:          req.Note,
		Link:          req.Link,
	}
	if err := h.Repo.CreatePOI(poi); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": poi.ID})
}

// UpdatePOI applies the supplied fields to an existing POI after the
// ownership check. Fields absent from the body are left unchanged.
func (h *POIHandler) UpdatePOI(w http.ResponseWriter, r *http.Request, id string) {
	poi, done := h.loadOwned(w, r, id)
	if done {
		return
	}

	var req struct {
		Name       *string  `json:"name"`
		Lat        *float64 `json:"lat"`
		Lng        *float64 `json:"lng"`
		CategoryID *int64   `json:"category_id"`
		Note       *string  `json:"note"`
		Link       *string  `json:"link"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if req.Name != nil {
		poi.Name = *req.Name
	}
	if req.Lat != nil {
		poi.Lat = *req.Lat
	}
	if req.Lng != nil {
		poi.Lng = *req.Lng
	}
	if req.CategoryID != nil {
		poi.CategoryID = *req.CategoryID
	}
	if req.Note != nil {
		poi.Note = *req.Note
	}
	if req.Link != nil {
		poi.Link = *req.Link
	}

	if poi.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !validCoordinates(poi.Lat, poi.Lng) {
		writeError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}

	if err := h.Repo.UpdatePOI(poi); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeError(w, http.StatusNotFound, "poi not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, poi)
}

// DeletePOI removes a POI after the ownership check.
func (h *POIHandler) DeletePOI(w http.ResponseWriter, r *http.Request, id string) {
	poi, done := h.loadOwned(w, r, id)
	if done {
		return
	}

	if err := h.Repo.DeletePOI(poi.ID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			writeError(w, http.StatusNotFound, "poi not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// loadOwned fetches the POI and enforces the ownership rule: admins may touch
// any POI, other callers only their own. When done is true a response has
// already been written.
func (h *POIHandler) loadOwned(w http.ResponseWriter, r *http.Request, id string) (*models.POI, bool) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, true
	}

	poiID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid poi id")
		return nil, true
	}

	poi, err := h.Repo.GetPOIByID(poiID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, true
	}
	if poi == nil {
		writeError(w, http.StatusNotFound, "poi not found")
		return nil, true
	}
	if ident.Role != models.RoleAdmin && poi.OwnerID != ident.UserID {
		writeError(w, http.StatusForbidden, "forbidden")
		return nil, true
	}
	return poi, false
}

func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
