package stylist

import (
	"context"
	"errors"
	"math/rand/v2"

	"gorm.io/gorm"

	"github.com/armariolabs/armario-api/internal/catalog"
	domain "github.com/armariolabs/armario-api/internal/domain/closet"
	"github.com/armariolabs/armario-api/internal/httperr"
	"github.com/armariolabs/armario-api/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type OutfitOutput struct {
	Superior *models.Prenda
	Inferior *models.Prenda
}

func (o *OutfitOutput) Completo() bool {
	return o.Superior != nil && o.Inferior != nil
}

// ======================================================
// USE CASE
// ======================================================

// SuggestOutfit elige al azar una prenda de zona superior y una de zona
// inferior del armario del usuario. La partición sale del catálogo, no de
// listas de ids repetidas en cada pantalla.
type SuggestOutfit struct {
	repo domain.Repository
}

func NewSuggestOutfit(repo domain.Repository) *SuggestOutfit {
	return &SuggestOutfit{repo: repo}
}

func (uc *SuggestOutfit) Execute(ctx context.Context, userID uint) (*OutfitOutput, error) {

	if _, err := uc.repo.GetUsuarioByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	prendas, err := uc.repo.ListPrendasByUsuario(ctx, userID)
	if err != nil {
		return nil, err
	}

	var superiores, inferiores []models.Prenda
	for _, p := range prendas {
		switch catalog.ZonaDeCategoria(p.CategoriaID) {
		case catalog.ZonaSuperior:
			superiores = append(superiores, p)
		case catalog.ZonaInferior:
			inferiores = append(inferiores, p)
		}
	}

	out := &OutfitOutput{}
	if len(superiores) > 0 {
		out.Superior = &superiores[rand.IntN(len(superiores))]
	}
	if len(inferiores) > 0 {
		out.Inferior = &inferiores[rand.IntN(len(inferiores))]
	}
	return out, nil
}
