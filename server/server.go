package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/rms/handlers"
	"github.com/ray-remotestate/rms/middlewares"
	"github.com/ray-remotestate/rms/models"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes() *Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	router.HandleFunc("/api/auth/login", handlers.Login).Methods("POST")

	authRoutes := router.PathPrefix("/api").Subrouter()
	authRoutes.Use(middlewares.AuthMiddleware)

	// any authenticated role
	authRoutes.HandleFunc("/menu", handlers.GetMenu).Methods("GET")
	authRoutes.HandleFunc("/tables", handlers.GetTables).Methods("GET")
	authRoutes.HandleFunc("/tables/{id}/status", handlers.UpdateTableStatus).Methods("PUT")
	authRoutes.HandleFunc("/orders", handlers.GetOrders).Methods("GET")
	authRoutes.HandleFunc("/orders", handlers.CreateOrder).Methods("POST")
	authRoutes.HandleFunc("/orders/{id}/status", handlers.UpdateOrderStatus).Methods("PUT")
	authRoutes.HandleFunc("/orders/{id}/pay", handlers.PayOrder).Methods("PUT")
	authRoutes.HandleFunc("/bills", handlers.GenerateBill).Methods("POST")
	authRoutes.HandleFunc("/bills/{id}", handlers.GetBillByID).Methods("GET")

	// admin only
	admin := authRoutes.NewRoute().Subrouter()
	admin.Use(middlewares.RoleBasedMiddleware(models.RoleAdmin))

	admin.HandleFunc("/auth/register", handlers.Register).Methods("POST")

	admin.HandleFunc("/staff", handlers.ListStaff).Methods("GET")
	admin.HandleFunc("/staff/{id}", handlers.UpdateStaff).Methods("PUT")
	admin.HandleFunc("/staff/{id}", handlers.DeleteStaff).Methods("DELETE")

	admin.HandleFunc("/menu", handlers.AddMenuItem).Methods("POST")
	admin.HandleFunc("/menu/{id}", handlers.UpdateMenuItem).Methods("PUT")
	admin.HandleFunc("/menu/{id}", handlers.DeleteMenuItem).Methods("DELETE")

	admin.HandleFunc("/tables", handlers.AddTable).Methods("POST")
	admin.HandleFunc("/tables/{id}", handlers.UpdateTable).Methods("PUT")
	admin.HandleFunc("/tables/{id}", handlers.DeleteTable).Methods("DELETE")

	admin.HandleFunc("/orders/{id}", handlers.UpdateOrder).Methods("PUT")
	admin.HandleFunc("/orders/{id}", handlers.DeleteOrder).Methods("DELETE")

	admin.HandleFunc("/bills", handlers.GetAllBills).Methods("GET")
	admin.HandleFunc("/bills/{id}", handlers.DeleteBill).Methods("DELETE")

	admin.HandleFunc("/inventory", handlers.GetInventory).Methods("GET")
	admin.HandleFunc("/inventory/low-stock", handlers.GetLowStockItems).Methods("GET")
	admin.HandleFunc("/inventory", handlers.AddInventoryItem).Methods("POST")
	admin.HandleFunc("/inventory/{id}", handlers.UpdateInventoryItem).Methods("PUT")
	admin.HandleFunc("/inventory/{id}", handlers.DeleteInventoryItem).Methods("DELETE")

	admin.HandleFunc("/reports", handlers.GetSalesReport).Methods("GET")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
