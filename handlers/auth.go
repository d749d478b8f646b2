package handlers

import (
	"database/sql"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/rms/database"
	"github.com/ray-remotestate/rms/database/dbhelper"
	"github.com/ray-remotestate/rms/models"
	"github.com/ray-remotestate/rms/utils"
)

// Register creates a staff account. Mounted behind the admin subrouter.
func Register(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name     string      `json:"name"`
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}
	if len(req.Password) < 6 {
		utils.RespondError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}
	if req.Role == "" {
		req.Role = models.RoleStaff
	}
	if !req.Role.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "role must be admin or staff")
		return
	}

	exists, err := dbhelper.IsStaffExists(req.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to check user existence")
		return
	}
	if exists {
		utils.RespondError(w, http.StatusConflict, "user already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	id, err := dbhelper.CreateStaff(req.Name, req.Email, hashedPassword, req.Role)
	if err != nil {
		if database.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "user already exists")
			return
		}
		logrus.Printf("failed to create staff account, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user": map[string]interface{}{
			"id":    id,
			"name":  req.Name,
			"email": req.Email,
			"role":  req.Role,
		},
	})
}

// Login checks credentials against the account matching both email and the
// requested role, then issues a bearer token.
func Login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}

	var req request
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Email == "" || req.Password == "" || req.Role == "" {
		utils.RespondError(w, http.StatusBadRequest, "email, password and role are required")
		return
	}
	if !req.Role.IsValid() {
		utils.RespondError(w, http.StatusBadRequest, "role must be admin or staff")
		return
	}

	account, err := dbhelper.GetStaffByEmailAndRole(req.Email, req.Role)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "user not found or wrong role selected")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "server error")
		return
	}

	if !dbhelper.CheckStaffPassword(account.Password, req.Password) {
		utils.RespondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(account.ID, account.Role)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "login successful",
		"token":   token,
		"role":    account.Role,
		"name":    account.Name,
	})
}
