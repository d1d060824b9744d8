package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"maria.lopez@correo.co", true},
		{"sin-arroba.com", false},
		{"dos@@arrobas.com", false},
		{"con espacios@b.com", false},
		{"a@sindominio", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsEmailValid(tc.email), "email %q", tc.email)
	}
}

func TestIsPasswordValid(t *testing.T) {
	cases := []struct {
		pw   string
		want bool
	}{
		{"abcd1234", true},
		{"A1bcdefg", true},
		{"corta1", false},     // menos de 8
		{"soloLetras", false}, // sin número
		{"12345678", false},   // sin letra
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsPasswordValid(tc.pw), "password %q", tc.pw)
	}
}

func TestParseFechaNacimiento(t *testing.T) {
	t.Run("fecha válida", func(t *testing.T) {
		fecha, formatoOK, fechaOK := ParseFechaNacimiento("1999-04-23")
		assert.True(t, formatoOK)
		assert.True(t, fechaOK)
		assert.Equal(t, "1999-04-23", fecha.Format("2006-01-02"))
	})

	t.Run("formato incorrecto", func(t *testing.T) {
		_, formatoOK, _ := ParseFechaNacimiento("23/04/1999")
		assert.False(t, formatoOK)
	})

	t.Run("pasa el regex pero no existe en el calendario", func(t *testing.T) {
		_, formatoOK, fechaOK := ParseFechaNacimiento("2025-02-30")
		assert.True(t, formatoOK)
		assert.False(t, fechaOK)
	})
}
