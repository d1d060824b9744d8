package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/armariolabs/armario-api/internal/models"
)

type ClosetGormRepository struct {
	db *gorm.DB
}

func NewClosetGormRepository(db *gorm.DB) *ClosetGormRepository {
	return &ClosetGormRepository{db: db}
}

// --------------------------------------------------
// Usuario
// --------------------------------------------------

func (r *ClosetGormRepository) GetUsuarioByID(
	ctx context.Context,
	id uint,
) (*models.Usuario, error) {

	var u models.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// --------------------------------------------------
// Preferencias
// --------------------------------------------------

// SavePreferencias corre todo el guardado dentro de una transacción. El
// ON CONFLICT DO NOTHING sobre el índice (user_id, kind, tag_id) hace el
// reenvío idempotente; cualquier error revierte el lote completo.
func (r *ClosetGormRepository) SavePreferencias(
	ctx context.Context,
	userID uint,
	assocs []models.UserPreference,
) error {

	if len(assocs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range assocs {
			assocs[i].UserID = userID
			if err := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&assocs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Prendas
// --------------------------------------------------

// Los listados nunca cargan los bytes de la imagen.
func (r *ClosetGormRepository) ListPrendasByUsuario(
	ctx context.Context,
	userID uint,
) ([]models.Prenda, error) {

	var prendas []models.Prenda
	if err := r.db.WithContext(ctx).
		Select("id", "usuario_id", "categoria_id", "mime_type", "created_at").
		Where("usuario_id = ?", userID).
		Order("created_at DESC").
		Find(&prendas).Error; err != nil {
		return nil, err
	}
	return prendas, nil
}

func (r *ClosetGormRepository) ListPrendasRecientes(
	ctx context.Context,
	userID uint,
	limit int,
) ([]models.Prenda, error) {

	var prendas []models.Prenda
	if err := r.db.WithContext(ctx).
		Select("id", "usuario_id", "categoria_id", "mime_type", "created_at").
		Where("usuario_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&prendas).Error; err != nil {
		return nil, err
	}
	return prendas, nil
}
