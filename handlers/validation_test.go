package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// These tests exercise the request-validation edge of each handler; every
// rejection below happens before any storage access.

func doJSON(t *testing.T, handler http.HandlerFunc, method, path, pattern, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc(pattern, handler).Methods(method)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func wantMessage(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, status, rec.Body.String())
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body["message"] == "" {
		t.Error("error body has no message")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "no items", body: `{"table": 4, "items": [], "total": 0}`},
		{name: "non numeric table", body: `{"table": "four", "items": [{"name": "Soup", "price": 100, "quantity": 2}], "total": 200}`},
		{name: "zero quantity", body: `{"table": 4, "items": [{"name": "Soup", "price": 100, "quantity": 0}], "total": 100}`},
		{name: "negative price", body: `{"table": 4, "items": [{"name": "Soup", "price": -1, "quantity": 1}], "total": 0}`},
		{name: "unnamed item", body: `{"table": 4, "items": [{"name": "", "price": 10, "quantity": 1}], "total": 10}`},
		{name: "negative total", body: `{"table": 4, "items": [{"name": "Soup", "price": 100, "quantity": 2}], "total": -200}`},
		{name: "already paid status", body: `{"table": 4, "items": [{"name": "Soup", "price": 100, "quantity": 2}], "total": 200, "status": "paid"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, CreateOrder, http.MethodPost, "/api/orders", "/api/orders", tt.body)
			wantMessage(t, rec, http.StatusBadRequest)
		})
	}
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	id := uuid.New().String()

	t.Run("bad order id", func(t *testing.T) {
		rec := doJSON(t, UpdateOrderStatus, http.MethodPut, "/api/orders/nope/status", "/api/orders/{id}/status", `{"status": "preparing"}`)
		wantMessage(t, rec, http.StatusBadRequest)
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := doJSON(t, UpdateOrderStatus, http.MethodPut, "/api/orders/"+id+"/status", "/api/orders/{id}/status", `{"status": "cancelled"}`)
		wantMessage(t, rec, http.StatusBadRequest)
	})

	t.Run("paid must go through pay", func(t *testing.T) {
		rec := doJSON(t, UpdateOrderStatus, http.MethodPut, "/api/orders/"+id+"/status", "/api/orders/{id}/status", `{"status": "paid"}`)
		wantMessage(t, rec, http.StatusBadRequest)
	})
}

func TestPayOrderValidation(t *testing.T) {
	id := uuid.New().String()

	t.Run("bad payment method", func(t *testing.T) {
		rec := doJSON(t, PayOrder, http.MethodPut, "/api/orders/"+id+"/pay", "/api/orders/{id}/pay", `{"paymentMethod": "Cheque"}`)
		wantMessage(t, rec, http.StatusBadRequest)
	})

	t.Run("missing payment method", func(t *testing.T) {
		rec := doJSON(t, PayOrder, http.MethodPut, "/api/orders/"+id+"/pay", "/api/orders/{id}/pay", `{}`)
		wantMessage(t, rec, http.StatusBadRequest)
	})
}

func TestGenerateBillValidation(t *testing.T) {
	t.Run("missing order id", func(t *testing.T) {
		rec := doJSON(t, GenerateBill, http.MethodPost, "/api/bills", "/api/bills", `{"paymentMethod": "Cash"}`)
		wantMessage(t, rec, http.StatusBadRequest)
	})

	t.Run("bad payment method", func(t *testing.T) {
		rec := doJSON(t, GenerateBill, http.MethodPost, "/api/bills", "/api/bills",
			`{"orderId": "`+uuid.New().String()+`", "paymentMethod": "IOU"}`)
		wantMessage(t, rec, http.StatusBadRequest)
	})
}

func TestAddTableValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing number", body: `{"capacity": 4}`},
		{name: "empty body", body: `{}`},
		{name: "non numeric number", body: `{"number": "abc", "capacity": 4}`},
		{name: "float number", body: `{"number": "4.5", "capacity": 4}`},
		{name: "bad status", body: `{"number": 4, "capacity": 4, "status": "vacant"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, AddTable, http.MethodPost, "/api/tables", "/api/tables", tt.body)
			wantMessage(t, rec, http.StatusBadRequest)
		})
	}
}

func TestUpdateTableValidation(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing number", body: `{"capacity": 4, "status": "available"}`},
		{name: "non numeric number", body: `{"number": "abc", "capacity": 4, "status": "available"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, UpdateTable, http.MethodPut, "/api/tables/"+id, "/api/tables/{id}", tt.body)
			wantMessage(t, rec, http.StatusBadRequest)
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing fields", body: `{"name": "A"}`},
		{name: "short password", body: `{"name": "A", "email": "a@b.c", "password": "12345"}`},
		{name: "bad role", body: `{"name": "A", "email": "a@b.c", "password": "123456", "role": "owner"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, Register, http.MethodPost, "/api/auth/register", "/api/auth/register", tt.body)
			wantMessage(t, rec, http.StatusBadRequest)
		})
	}
}

func TestAddInventoryItemValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing unit", body: `{"name": "Rice", "quantity": 10}`},
		{name: "negative quantity", body: `{"name": "Rice", "quantity": -1, "unit": "kg"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, AddInventoryItem, http.MethodPost, "/api/inventory", "/api/inventory", tt.body)
			wantMessage(t, rec, http.StatusBadRequest)
		})
	}
}

func TestAddMenuItemValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing category", body: `{"name": "Soup", "price": 100}`},
		{name: "negative price", body: `{"name": "Soup", "category": "Starters", "price": -5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, AddMenuItem, http.MethodPost, "/api/menu", "/api/menu", tt.body)
			wantMessage(t, rec, http.StatusBadRequest)
		})
	}
}
