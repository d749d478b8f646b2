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

const defaultLowStockThreshold = 5

func GetInventory(w http.ResponseWriter, r *http.Request) {
	items, err := dbhelper.ListInventory()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to query inventory")
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

func GetLowStockItems(w http.ResponseWriter, r *http.Request) {
	items, err := dbhelper.ListInventory()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to query inventory")
		return
	}

	lowStock := make([]models.InventoryItem, 0)
	for _, it := range items {
		if it.IsLowStock() {
			lowStock = append(lowStock, it)
		}
	}
	utils.RespondJSON(w, http.StatusOK, lowStock)
}

func AddInventoryItem(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name              string   `json:"name"`
		Quantity          float64  `json:"quantity"`
		Unit              string   `json:"unit"`
		LowStockThreshold *float64 `json:"lowStockThreshold"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Name == "" || req.Unit == "" {
		utils.RespondError(w, http.StatusBadRequest, "name and unit are required")
		return
	}
	if req.Quantity < 0 {
		utils.RespondError(w, http.StatusBadRequest, "quantity cannot be negative")
		return
	}

	threshold := float64(defaultLowStockThreshold)
	if req.LowStockThreshold != nil {
		threshold = *req.LowStockThreshold
	}

	exists, err := dbhelper.IsInventoryItemExists(req.Name)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to check inventory")
		return
	}
	if exists {
		utils.RespondError(w, http.StatusConflict, "item already exists")
		return
	}

	item, err := dbhelper.CreateInventoryItem(req.Name, req.Quantity, req.Unit, threshold)
	if err != nil {
		if database.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "item already exists")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to add inventory item")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, item)
}

// UpdateInventoryItem accepts a partial body; omitted fields keep their
// stored values.
func UpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid inventory item id")
		return
	}

	type request struct {
		Name              *string  `json:"name"`
		Quantity          *float64 `json:"quantity"`
		Unit              *string  `json:"unit"`
		LowStockThreshold *float64 `json:"lowStockThreshold"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	current, err := dbhelper.GetInventoryItemByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "item not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load inventory item")
		return
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Quantity != nil {
		current.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		current.Unit = *req.Unit
	}
	if req.LowStockThreshold != nil {
		current.LowStockThreshold = *req.LowStockThreshold
	}

	if current.Name == "" || current.Unit == "" {
		utils.RespondError(w, http.StatusBadRequest, "name and unit are required")
		return
	}
	if current.Quantity < 0 {
		utils.RespondError(w, http.StatusBadRequest, "quantity cannot be negative")
		return
	}

	item, err := dbhelper.UpdateInventoryItem(id, current.Name, current.Quantity, current.Unit, current.LowStockThreshold)
	if err != nil {
		if database.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "item already exists")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to update inventory item")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func DeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid inventory item id")
		return
	}

	err = dbhelper.DeleteInventoryItem(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "item not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete inventory item")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "inventory item deleted successfully"})
}
