package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ray-remotestate/rms/database/dbhelper"
	"github.com/ray-remotestate/rms/utils"
)

type menuItemRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Available *bool   `json:"available"`
	Image     *string `json:"image"`
}

func (req *menuItemRequest) validate() string {
	if req.Name == "" || req.Category == "" {
		return "name and category are required"
	}
	if req.Price < 0 {
		return "price cannot be negative"
	}
	return ""
}

func GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := dbhelper.ListMenu()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to query menu")
		return
	}
	utils.RespondJSON(w, http.StatusOK, menu)
}

func AddMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := dbhelper.CreateMenuItem(req.Name, req.Category, req.Price, available, req.Image)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to add menu item")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, item)
}

func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var req menuItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := dbhelper.UpdateMenuItem(id, req.Name, req.Category, req.Price, available, req.Image)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu item not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to update menu item")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	err = dbhelper.DeleteMenuItem(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu item not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete menu item")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "menu item deleted successfully"})
}
