package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/database/dbhelper"
	"github.com/ray-remotestate/rms/middlewares"
	"github.com/ray-remotestate/rms/models"
	"github.com/ray-remotestate/rms/utils"
)

const defaultTableCapacity = 4

func GetTables(w http.ResponseWriter, r *http.Request) {
	tables, err := dbhelper.ListTables()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to query tables")
		return
	}
	utils.RespondJSON(w, http.StatusOK, tables)
}

func AddTable(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Number   *models.TableNumber `json:"number"`
		Capacity int                 `json:"capacity"`
		Status   models.TableStatus  `json:"status"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil || req.Number == nil {
		utils.RespondError(w, http.StatusBadRequest, "table number must be a valid number")
		return
	}
	number := *req.Number

	if req.Capacity <= 0 {
		req.Capacity = defaultTableCapacity
	}
	if req.Status == "" {
		req.Status = models.TableAvailable
	}
	if !req.Status.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "invalid table status")
		return
	}

	taken, err := dbhelper.IsTableNumberTaken(number, uuid.Nil)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to check table number")
		return
	}
	if taken {
		utils.RespondError(w, http.StatusConflict, "table number already exists")
		return
	}

	table, err := dbhelper.CreateTable(number, req.Capacity, req.Status)
	if err != nil {
		if database.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "table number already exists")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to add table")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, table)
}

func UpdateTable(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid table id")
		return
	}

	type request struct {
		Number   *models.TableNumber `json:"number"`
		Capacity int                 `json:"capacity"`
		Status   models.TableStatus  `json:"status"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil || req.Number == nil {
		utils.RespondError(w, http.StatusBadRequest, "table number must be a valid number")
		return
	}
	number := *req.Number

	if req.Capacity <= 0 {
		req.Capacity = defaultTableCapacity
	}
	if !req.Status.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "invalid table status")
		return
	}

	// uniqueness check must not collide with the table being edited
	taken, err := dbhelper.IsTableNumberTaken(number, id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to check table number")
		return
	}
	if taken {
		utils.RespondError(w, http.StatusConflict, "table number already exists")
		return
	}

	table, err := dbhelper.UpdateTable(id, number, req.Capacity, req.Status)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "table not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to update table")
		return
	}
	utils.RespondJSON(w, http.StatusOK, table)
}

// UpdateTableStatus is the staff-safe route: only the status field changes,
// and staff cannot touch a table that is currently reserved.
func UpdateTableStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid table id")
		return
	}

	type request struct {
		Status models.TableStatus `json:"status"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !req.Status.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "invalid table status")
		return
	}

	current, err := dbhelper.GetTableByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "table not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load table")
		return
	}

	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if claims.Role != models.RoleAdmin && current.Status == models.TableReserved {
		utils.RespondError(w, http.StatusForbidden, "reserved tables can only be changed by an admin")
		return
	}

	table, err := dbhelper.UpdateTableStatus(id, req.Status)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to update table status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, table)
}

func DeleteTable(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid table id")
		return
	}

	err = dbhelper.DeleteTable(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "table not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete table")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "table deleted successfully"})
}
