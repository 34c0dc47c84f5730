// file: internals/features/users/user/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"guruku_backend/internals/configs"
	"guruku_backend/internals/constants"
	"guruku_backend/internals/features/users/user/dto"
	"guruku_backend/internals/features/users/user/model"
	helper "guruku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

const accessTokenTTL = 24 * time.Hour

/* =========================================================
   POST /api/auth/register
========================================================= */

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !constants.IsValidRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "role harus teacher atau student")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing model.UserModel
	err := ctrl.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memeriksa email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memproses password")
	}

	user := model.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    email,
		Password: string(hashed),
		Role:     req.Role,
		IsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat akun")
	}

	log.Printf("[Register] user baru %s role=%s", user.Email, user.Role)
	return helper.JsonCreated(c, "Registrasi berhasil", dto.FromModelUser(&user))
}

/* =========================================================
   POST /api/auth/login
========================================================= */

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user model.UserModel
	if err := ctrl.DB.
		Where("email = ?", email).
		Where("deleted_at IS NULL").
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "akun dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "email atau password salah")
	}

	token, err := issueAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromModelUser(&user),
	})
}

func issueAccessToken(user *model.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
