package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/armariolabs/armario-api/internal/audit"
	"github.com/armariolabs/armario-api/internal/config"
	"github.com/armariolabs/armario-api/internal/httperr"
	"github.com/armariolabs/armario-api/internal/httpresp"
	"github.com/armariolabs/armario-api/internal/models"
	"github.com/armariolabs/armario-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: audit}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Email           string `json:"email"`
	Contrasena      string `json:"contrasena"`
}

type LoginRequest struct {
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

// --------- Handlers ---------

// Register valida en orden fijo (la primera violación gana) y recién después
// inserta. El duplicado de email no se consulta aparte: lo detecta el índice
// único y se traduce a un 400.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cuerpo de la petición inválido")
		return
	}

	if req.Nombre == "" || req.Apellido == "" || req.FechaNacimiento == "" ||
		req.Email == "" || req.Contrasena == "" {
		httperr.BadRequest(c, "missing_fields", "Todos los campos son obligatorios")
		return
	}

	fecha, formatoOK, fechaOK := validators.ParseFechaNacimiento(req.FechaNacimiento)
	if !formatoOK {
		httperr.BadRequest(c, "invalid_date_format", "La fecha debe tener el formato YYYY-MM-DD")
		return
	}
	if !fechaOK {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida")
		return
	}

	if !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "El email no es válido")
		return
	}

	if !validators.IsPasswordValid(req.Contrasena) {
		httperr.BadRequest(c, "weak_password",
			"La contraseña debe tener mínimo 8 caracteres, incluir al menos una letra y un número")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("bcrypt hash failed")
		httperr.Internal(c, "internal_error", "Error interno del servidor")
		return
	}

	usuario := models.Usuario{
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		FechaNacimiento: fecha,
		Email:           req.Email,
		Contrasena:      string(hashed),
	}

	if err := h.db.Create(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "email_taken", "El email ya está registrado")
			return
		}
		log.Error().Err(err).Msg("failed to create user")
		httperr.Internal(c, "internal_error", "Error interno del servidor")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &usuario.ID,
		Action:   "user_registered",
		Entity:   "usuario",
		EntityID: &usuario.ID,
	})

	httpresp.Mensaje(c, http.StatusCreated, "Usuario registrado con éxito", gin.H{
		"userId": usuario.ID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cuerpo de la petición inválido")
		return
	}

	if req.Email == "" || req.Contrasena == "" {
		httperr.BadRequest(c, "missing_fields", "Email y contraseña son obligatorios")
		return
	}

	var usuario models.Usuario
	if err := h.db.Where("email = ?", req.Email).First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.BadRequest(c, "email_not_registered", "El email no está registrado")
			return
		}
		log.Error().Err(err).Msg("failed to look up user")
		httperr.Internal(c, "internal_error", "Error interno del servidor")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(req.Contrasena)); err != nil {
		httperr.BadRequest(c, "wrong_password", "Contraseña incorrecta")
		return
	}

	token, err := h.generateToken(&usuario)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign token")
		httperr.Internal(c, "internal_error", "Error interno del servidor")
		return
	}

	// El hash jamás vuelve al cliente: el campo lleva json:"-" y además
	// acá se arma la respuesta a mano.
	httpresp.Mensaje(c, http.StatusOK, "Inicio de sesión exitoso", gin.H{
		"usuario": gin.H{
			"id":               usuario.ID,
			"nombre":           usuario.Nombre,
			"apellido":         usuario.Apellido,
			"fecha_nacimiento": usuario.FechaNacimiento.Format("2006-01-02"),
			"email":            usuario.Email,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(usuario *models.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"sub": usuario.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
