package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/lachapa-pdv/utils"
)

// ShiftLength is how long a staff token stays valid.
const ShiftLength = 12 * time.Hour

var errInvalidCredentials = errors.New("invalid credentials")

// UserController issues staff tokens. Each role logs in with a shared PIN whose
// bcrypt hash comes from the environment.
type UserController struct {
	Secret  []byte
	PINHash map[string]string // role -> bcrypt hash
}

func NewUserController(secret []byte, pinHash map[string]string) *UserController {
	return &UserController{Secret: secret, PINHash: pinHash}
}

// Login -> POST /login {"operator", "role", "pin"}
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Operator string `json:"operator" binding:"required"`
		Role     string `json:"role" binding:"required"`
		PIN      string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hash, ok := uc.PINHash[input.Role]
	if !ok || hash == "" {
		utils.RespondError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.PIN)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(uc.Secret, input.Operator, input.Role, ShiftLength)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for operator: %s, role: %s", input.Operator, input.Role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_role": input.Role,
		"expires":   time.Now().Add(ShiftLength),
	})
}

// GetProfile returns who the current token belongs to.
func (uc *UserController) GetProfile(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Profile", gin.H{
		"operator": c.GetString("operator"),
		"role":     c.GetString("role"),
	})
}
