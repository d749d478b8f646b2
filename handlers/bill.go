package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ray-remotestate/rms/database/dbhelper"
	"github.com/ray-remotestate/rms/models"
	"github.com/ray-remotestate/rms/utils"
)

// GenerateBill settles an order through the same transactional path as the
// pay endpoint; the two request shapes share one semantics.
func GenerateBill(w http.ResponseWriter, r *http.Request) {
	type request struct {
		OrderID       uuid.UUID            `json:"orderId"`
		PaymentMethod models.PaymentMethod `json:"paymentMethod"`
		Tax           *float64             `json:"tax"`
		ServiceCharge *float64             `json:"serviceCharge"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.OrderID == uuid.Nil {
		utils.RespondError(w, http.StatusBadRequest, "orderId is required")
		return
	}
	if !req.PaymentMethod.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "paymentMethod must be Cash, Card or UPI")
		return
	}

	bill, _, alreadyPaid, err := settleOrder(req.OrderID, req.PaymentMethod, req.Tax, req.ServiceCharge)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate bill")
		return
	}

	if alreadyPaid {
		if bill == nil {
			utils.RespondError(w, http.StatusNotFound, "order is already paid and its bill no longer exists")
			return
		}
		utils.RespondJSON(w, http.StatusOK, bill)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, bill)
}

func GetAllBills(w http.ResponseWriter, r *http.Request) {
	bills, err := dbhelper.ListBills()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to query bills")
		return
	}
	utils.RespondJSON(w, http.StatusOK, bills)
}

func GetBillByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid bill id")
		return
	}

	bill, err := dbhelper.GetBillByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "bill not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load bill")
		return
	}
	utils.RespondJSON(w, http.StatusOK, bill)
}

func DeleteBill(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid bill id")
		return
	}

	err = dbhelper.DeleteBill(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "bill not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete bill")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "bill deleted successfully"})
}
