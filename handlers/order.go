package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/database/dbhelper"
	"github.com/ray-remotestate/rms/models"
	"github.com/ray-remotestate/rms/utils"
)

var errTableNotFound = errors.New("no table with that number")

type orderRequest struct {
	Table  models.TableNumber `json:"table"`
	Items  models.OrderItems  `json:"items"`
	Total  float64            `json:"total"`
	Status models.OrderStatus `json:"status"`
}

func (req *orderRequest) validate() string {
	if len(req.Items) == 0 {
		return "order must contain at least one item"
	}
	for _, it := range req.Items {
		if it.Name == "" {
			return "every item needs a name"
		}
		if it.Quantity < 1 {
			return "item quantity must be at least 1"
		}
		if it.Price < 0 {
			return "item price cannot be negative"
		}
	}
	if req.Total < 0 {
		return "total cannot be negative"
	}
	return ""
}

func GetOrders(w http.ResponseWriter, r *http.Request) {
	since := time.Time{}
	if r.URL.Query().Get("period") == "today" {
		now := time.Now()
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	orders, err := dbhelper.ListOrders(since)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to query orders")
		return
	}
	utils.RespondJSON(w, http.StatusOK, orders)
}

// CreateOrder inserts a pending order and occupies its table in a single
// transaction, so an order can never reference a table that was not flipped.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	if req.Total == 0 {
		for _, it := range req.Items {
			req.Total += it.Price * float64(it.Quantity)
		}
	}
	if req.Status == "" {
		req.Status = models.OrderPending
	}
	if req.Status != models.OrderPending {
		utils.RespondError(w, http.StatusBadRequest, "a new order must start as pending")
		return
	}

	var order models.Order
	txErr := database.Tx(func(tx *sql.Tx) error {
		err := dbhelper.SetTableStatusByNumber(tx, req.Table, models.TableOccupied)
		if err == sql.ErrNoRows {
			return errTableNotFound
		} else if err != nil {
			logrus.Printf("failed to occupy table %d, error: %v", req.Table, err)
			return err
		}

		order, err = dbhelper.CreateOrder(tx, req.Table, req.Items, req.Total, req.Status)
		if err != nil {
			logrus.Printf("failed to create order, error: %v", err)
		}
		return err
	})
	if txErr == errTableNotFound {
		utils.RespondError(w, http.StatusNotFound, "no table with that number")
		return
	} else if txErr != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, order)
}

// UpdateOrder is the admin-only full replacement of an order.
func UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req orderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}
	if !req.Status.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "invalid order status")
		return
	}

	order, err := dbhelper.UpdateOrder(id, req.Table, req.Items, req.Total, req.Status)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to update order")
		return
	}
	utils.RespondJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus advances the kitchen flow. Tables are freed at payment
// time, not at completed/delivered, and paid is only reachable via pay.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	type request struct {
		Status models.OrderStatus `json:"status"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !req.Status.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "invalid order status")
		return
	}
	if req.Status == models.OrderPaid {
		utils.RespondError(w, http.StatusBadRequest, "use the pay endpoint to mark an order paid")
		return
	}

	current, err := dbhelper.GetOrderByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load order")
		return
	}

	if !current.Status.CanTransitionTo(req.Status) {
		utils.RespondError(w, http.StatusBadRequest, "cannot move order from "+string(current.Status)+" to "+string(req.Status))
		return
	}

	order, err := dbhelper.UpdateOrderStatus(id, req.Status)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to update order status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, order)
}

// PayOrder marks an order paid: one transaction writes the bill snapshot,
// flips the order to paid, and frees the table. Repeating the call on a paid
// order returns the existing bill and performs no writes.
func PayOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	type request struct {
		PaymentMethod models.PaymentMethod `json:"paymentMethod"`
		Tax           *float64             `json:"tax"`
		ServiceCharge *float64             `json:"serviceCharge"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !req.PaymentMethod.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "paymentMethod must be Cash, Card or UPI")
		return
	}

	bill, order, alreadyPaid, err := settleOrder(id, req.PaymentMethod, req.Tax, req.ServiceCharge)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to mark order paid")
		return
	}

	utils.RespondJSON(w, http.StatusOK, paymentResponse(order, bill, alreadyPaid))
}

// paymentResponse shapes the pay reply. An already-paid order whose bill was
// since deleted by an admin comes back without a bill field rather than with
// a zero-value snapshot.
func paymentResponse(order models.Order, bill *models.Bill, alreadyPaid bool) map[string]interface{} {
	resp := map[string]interface{}{
		"message": "order marked as paid",
		"order":   order,
	}
	if alreadyPaid {
		resp["message"] = "order was already paid"
	}
	if bill != nil {
		resp["bill"] = bill
	} else if alreadyPaid {
		resp["message"] = "order was already paid; its bill no longer exists"
	}
	return resp
}

func DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	err = dbhelper.DeleteOrder(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete order")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "order deleted successfully"})
}

// settleOrder is the single payment path shared by PayOrder and GenerateBill.
// The order row is locked for the duration so two concurrent payment calls
// cannot both snapshot a bill.
func settleOrder(orderID uuid.UUID, method models.PaymentMethod, taxPercent, servicePercent *float64) (*models.Bill, models.Order, bool, error) {
	tax := float64(models.DefaultTaxPercent)
	if taxPercent != nil {
		tax = *taxPercent
	}
	service := float64(models.DefaultServiceChargePercent)
	if servicePercent != nil {
		service = *servicePercent
	}

	var bill models.Bill
	var order models.Order
	var alreadyPaid bool

	txErr := database.Tx(func(tx *sql.Tx) error {
		var err error
		order, err = dbhelper.GetOrderForUpdate(tx, orderID)
		if err != nil {
			return err
		}

		if order.Status == models.OrderPaid {
			alreadyPaid = true
			return nil
		}

		items, subtotal, taxAmount, serviceAmount, total := models.ComputeBill(order.Items, tax, service)
		bill, err = dbhelper.CreateBill(tx, models.Bill{
			OrderID:       order.ID,
			TableNumber:   order.TableNumber,
			Items:         items,
			Subtotal:      subtotal,
			Tax:           taxAmount,
			ServiceCharge: serviceAmount,
			TotalAmount:   total,
			PaymentMethod: method,
		})
		if err != nil {
			logrus.Printf("failed to create bill for order %s, error: %v", order.ID, err)
			return err
		}

		paidAt := time.Now()
		if err := dbhelper.MarkOrderPaid(tx, order.ID, method, paidAt); err != nil {
			logrus.Printf("failed to mark order %s paid, error: %v", order.ID, err)
			return err
		}
		order.Status = models.OrderPaid
		order.PaymentMethod = &method
		order.PaidAt = &paidAt

		err = dbhelper.SetTableStatusByNumber(tx, order.TableNumber, models.TableAvailable)
		if err == sql.ErrNoRows {
			// table was deleted since the order was placed; payment still stands
			logrus.Printf("no table with number %d to release for order %s", order.TableNumber, order.ID)
			return nil
		}
		return err
	})
	if txErr != nil {
		return nil, models.Order{}, false, txErr
	}

	if alreadyPaid {
		existing, err := dbhelper.GetBillByOrderID(orderID)
		if err == sql.ErrNoRows {
			// bill was admin-deleted after payment; the order stays settled
			return nil, order, true, nil
		} else if err != nil {
			return nil, models.Order{}, false, err
		}
		return &existing, order, true, nil
	}
	return &bill, order, false, nil
}
