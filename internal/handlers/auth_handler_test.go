package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	gdb, mock := newMockDB(t)
	h := NewAuthHandler(gdb, testConfig(), nil)

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r, mock
}

func TestRegisterSuccess(t *testing.T) {
	r, mock := authRouter(t)

	mock.ExpectQuery(`INSERT INTO "usuarios"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	body := `{"nombre":"Ana","apellido":"Pérez","fecha_nacimiento":"1999-04-23","email":"a@b.com","contrasena":"abcd1234"}`
	w := performRequest(r, http.MethodPost, "/register", strings.NewReader(body), nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Usuario registrado con éxito", resp["message"])
	assert.EqualValues(t, 7, resp["userId"])
}

// El orden de validación es fijo: la primera violación gana y nada llega a
// la base de datos.
func TestRegisterValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{
			"campos faltantes",
			`{"nombre":"Ana","email":"a@b.com"}`,
			"Todos los campos son obligatorios",
		},
		{
			"formato de fecha",
			`{"nombre":"Ana","apellido":"P","fecha_nacimiento":"23-04-1999","email":"a@b.com","contrasena":"abcd1234"}`,
			"La fecha debe tener el formato YYYY-MM-DD",
		},
		{
			"fecha inexistente",
			`{"nombre":"Ana","apellido":"P","fecha_nacimiento":"1999-02-30","email":"a@b.com","contrasena":"abcd1234"}`,
			"Fecha inválida",
		},
		{
			"email inválido",
			`{"nombre":"Ana","apellido":"P","fecha_nacimiento":"1999-04-23","email":"no-es-email","contrasena":"abcd1234"}`,
			"El email no es válido",
		},
		{
			"contraseña débil",
			`{"nombre":"Ana","apellido":"P","fecha_nacimiento":"1999-04-23","email":"a@b.com","contrasena":"soloLetras"}`,
			"La contraseña debe tener mínimo 8 caracteres, incluir al menos una letra y un número",
		},
		{
			// fecha y email malos a la vez: gana la fecha
			"primera violación gana",
			`{"nombre":"Ana","apellido":"P","fecha_nacimiento":"mala","email":"tampoco","contrasena":"x"}`,
			"La fecha debe tener el formato YYYY-MM-DD",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, mock := authRouter(t)

			w := performRequest(r, http.MethodPost, "/register", strings.NewReader(tc.body), nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, mock := authRouter(t)

	// El índice único decide: la violación se traduce al 400 de duplicado.
	mock.ExpectQuery(`INSERT INTO "usuarios"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	body := `{"nombre":"Ana","apellido":"P","fecha_nacimiento":"1999-04-23","email":"a@b.com","contrasena":"abcd1234"}`
	w := performRequest(r, http.MethodPost, "/register", strings.NewReader(body), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El email ya está registrado")
}

func usuarioRow(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	fecha, _ := time.Parse("2006-01-02", "1999-04-23")
	return sqlmock.NewRows([]string{"id", "nombre", "apellido", "fecha_nacimiento", "email", "contrasena"}).
		AddRow(1, "Ana", "Pérez", fecha, "a@b.com", string(hash))
}

func TestLoginSuccess(t *testing.T) {
	r, mock := authRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "usuarios" WHERE email = \$1`).
		WillReturnRows(usuarioRow(t, "abcd1234"))

	w := performRequest(r, http.MethodPost, "/login",
		strings.NewReader(`{"email":"a@b.com","contrasena":"abcd1234"}`), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string         `json:"message"`
		Usuario map[string]any `json:"usuario"`
		Token   string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Inicio de sesión exitoso", resp.Message)
	assert.Equal(t, "a@b.com", resp.Usuario["email"])
	assert.Equal(t, "1999-04-23", resp.Usuario["fecha_nacimiento"])
	assert.NotEmpty(t, resp.Token)

	// El hash no sale por ningún camino.
	assert.NotContains(t, resp.Usuario, "contrasena")
	assert.NotContains(t, w.Body.String(), "contrasena")
}

func TestLoginWrongPassword(t *testing.T) {
	r, mock := authRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "usuarios" WHERE email = \$1`).
		WillReturnRows(usuarioRow(t, "abcd1234"))

	w := performRequest(r, http.MethodPost, "/login",
		strings.NewReader(`{"email":"a@b.com","contrasena":"wrongpass"}`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Contraseña incorrecta")
}

func TestLoginEmailNotRegistered(t *testing.T) {
	r, mock := authRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "usuarios" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performRequest(r, http.MethodPost, "/login",
		strings.NewReader(`{"email":"nadie@b.com","contrasena":"abcd1234"}`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El email no está registrado")
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := authRouter(t)

	w := performRequest(r, http.MethodPost, "/login",
		strings.NewReader(`{"email":"a@b.com"}`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "obligatorios")
}
