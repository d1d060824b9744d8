package closet

import (
	"context"

	"github.com/armariolabs/armario-api/internal/models"
)

// Repository es lo que necesitan los casos de uso del armario; la
// implementación GORM vive en infra/repository.
type Repository interface {
	// -------- Usuario --------
	GetUsuarioByID(
		ctx context.Context,
		id uint,
	) (*models.Usuario, error)

	// -------- Preferencias --------
	// SavePreferencias inserta todas las asociaciones en una sola
	// transacción con semántica insert-or-ignore: o se confirman todas o
	// no queda ninguna.
	SavePreferencias(
		ctx context.Context,
		userID uint,
		assocs []models.UserPreference,
	) error

	// -------- Prendas --------
	ListPrendasByUsuario(
		ctx context.Context,
		userID uint,
	) ([]models.Prenda, error)

	ListPrendasRecientes(
		ctx context.Context,
		userID uint,
		limit int,
	) ([]models.Prenda, error)
}
