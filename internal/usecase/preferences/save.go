package preferences

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/armariolabs/armario-api/internal/audit"
	"github.com/armariolabs/armario-api/internal/catalog"
	domain "github.com/armariolabs/armario-api/internal/domain/closet"
	"github.com/armariolabs/armario-api/internal/httperr"
	"github.com/armariolabs/armario-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SavePreferencesInput struct {
	UserID uint

	Colores   []int
	Estilos   []int
	Ocasiones []int
	Prendas   []int
}

// ======================================================
// USE CASE
// ======================================================

type SavePreferences struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSavePreferences(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SavePreferences {
	return &SavePreferences{
		repo:  repo,
		audit: audit,
	}
}

// Execute valida usuario y etiquetas antes de tocar la base, y después hace
// el guardado masivo en una sola transacción. Reenviar el mismo payload deja
// exactamente el mismo conjunto de asociaciones.
func (uc *SavePreferences) Execute(
	ctx context.Context,
	in SavePreferencesInput,
) error {

	// 1. El usuario tiene que existir antes de abrir la transacción.
	if _, err := uc.repo.GetUsuarioByID(ctx, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("user_not_found")
		}
		return err
	}

	// 2. Toda etiqueta debe pertenecer al catálogo fijo.
	assocs, err := buildAssociations(in)
	if err != nil {
		return err
	}

	// 3. Todo o nada.
	if err := uc.repo.SavePreferencias(ctx, in.UserID, assocs); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &in.UserID,
		Action: "preferences_saved",
		Entity: "user_preference",
		Metadata: map[string]int{
			"colores":   len(in.Colores),
			"estilos":   len(in.Estilos),
			"ocasiones": len(in.Ocasiones),
			"prendas":   len(in.Prendas),
		},
	})

	return nil
}

func buildAssociations(in SavePreferencesInput) ([]models.UserPreference, error) {
	var assocs []models.UserPreference

	add := func(kind string, ids []int, valid func(int) bool) error {
		for _, id := range ids {
			if !valid(id) {
				return httperr.ErrBusiness("invalid_tag")
			}
			assocs = append(assocs, models.UserPreference{Kind: kind, TagID: id})
		}
		return nil
	}

	if err := add(catalog.KindColor, in.Colores, catalog.ValidColor); err != nil {
		return nil, err
	}
	if err := add(catalog.KindEstilo, in.Estilos, catalog.ValidEstilo); err != nil {
		return nil, err
	}
	if err := add(catalog.KindOcasion, in.Ocasiones, catalog.ValidOcasion); err != nil {
		return nil, err
	}
	if err := add(catalog.KindPrenda, in.Prendas, catalog.ValidCategoria); err != nil {
		return nil, err
	}

	return assocs, nil
}
