package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/rms/config"
	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/database/dbhelper"
	"github.com/ray-remotestate/rms/models"
	"github.com/ray-remotestate/rms/server"
	"github.com/ray-remotestate/rms/utils"
)

const shutdownTimeOut = 10 * time.Second

func main() {
	config.Init()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := database.ConnectAndMigrate(); err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	if err := seedAdmin(); err != nil {
		logrus.Panicf("failed to seed admin account, error: %v", err)
	}

	svr := server.SetupRoutes()
	go func() {
		if err := svr.Run(config.Port()); err != nil && err != http.ErrServerClosed {
			logrus.Panicf("server stopped, error: %v", err)
		}
	}()
	logrus.Printf("server listening on %s", config.Port())

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeOut); err != nil {
		logrus.WithError(err).Error("failed to shut down server cleanly")
	}
	if err := database.ShutdownDatabase(); err != nil {
		logrus.WithError(err).Error("failed to close database connection!")
	}

	logrus.Info("system is shut ..zzz")
}

// seedAdmin creates the bootstrap admin account on first run, when no admin
// exists and ADMIN_EMAIL/ADMIN_PASSWORD are configured.
func seedAdmin() error {
	exists, err := dbhelper.AdminExists()
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	email, password := config.AdminSeed()
	if email == "" || password == "" {
		logrus.Println("no admin account and no ADMIN_EMAIL/ADMIN_PASSWORD set, skipping seed")
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if _, err := dbhelper.CreateStaff("Admin", email, hashed, models.RoleAdmin); err != nil {
		return err
	}
	logrus.Printf("seeded admin account %s", email)
	return nil
}
