package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/database/dbhelper"
	"github.com/ray-remotestate/rms/models"
	"github.com/ray-remotestate/rms/utils"
)

func ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := dbhelper.ListStaff()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to query staff")
		return
	}
	utils.RespondJSON(w, http.StatusOK, staff)
}

func UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	type request struct {
		Name     string      `json:"name"`
		Email    string      `json:"email"`
		Role     models.Role `json:"role"`
		Password string      `json:"password"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Name == "" || req.Email == "" {
		utils.RespondError(w, http.StatusBadRequest, "name and email are required")
		return
	}
	if !req.Role.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "role must be admin or staff")
		return
	}

	// Only re-hash when a new password was supplied; the stored hash is
	// left untouched otherwise.
	var hashedPassword string
	if req.Password != "" {
		if len(req.Password) < 6 {
			utils.RespondError(w, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}
		hashedPassword, err = utils.HashPassword(req.Password)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "failed to hash password")
			return
		}
	}

	updated, err := dbhelper.UpdateStaff(id, req.Name, req.Email, req.Role, hashedPassword)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "staff not found")
		return
	} else if err != nil {
		if database.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "email already in use")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to update staff")
		return
	}

	utils.RespondJSON(w, http.StatusOK, updated)
}

func DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	err = dbhelper.DeleteStaff(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "staff not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete staff")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "staff deleted successfully"})
}
