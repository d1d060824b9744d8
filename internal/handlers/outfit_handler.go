package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/armariolabs/armario-api/internal/dto"
	"github.com/armariolabs/armario-api/internal/httperr"
	"github.com/armariolabs/armario-api/internal/models"
	ucStylist "github.com/armariolabs/armario-api/internal/usecase/stylist"
)

type OutfitHandler struct {
	suggestUC *ucStylist.SuggestOutfit
}

func NewOutfitHandler(suggestUC *ucStylist.SuggestOutfit) *OutfitHandler {
	return &OutfitHandler{suggestUC: suggestUC}
}

// Suggest arma un atuendo al azar con una prenda superior y una inferior del
// armario del usuario.
func (h *OutfitHandler) Suggest(c *gin.Context) {
	usuarioIDStr := c.Query("usuarioId")
	if usuarioIDStr == "" {
		httperr.BadRequest(c, "missing_user_id", "Falta el usuarioId")
		return
	}

	usuarioID, err := strconv.ParseUint(usuarioIDStr, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "El usuarioId no es válido")
		return
	}

	out, err := h.suggestUC.Execute(c.Request.Context(), uint(usuarioID))
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			httperr.NotFound(c, "user_not_found", "Usuario no encontrado")
			return
		}
		log.Error().Err(err).Msg("failed to suggest outfit")
		httperr.Internal(c, "internal_error", "Error generando el atuendo")
		return
	}

	base := baseURL(c)
	body := gin.H{
		"superior": outfitItem(base, out.Superior),
		"inferior": outfitItem(base, out.Inferior),
	}
	if !out.Completo() {
		body["message"] = "Necesitas al menos una prenda superior y una inferior para un atuendo completo"
	}

	c.JSON(http.StatusOK, body)
}

func outfitItem(base string, p *models.Prenda) *dto.PrendaListItem {
	if p == nil {
		return nil
	}
	return &dto.PrendaListItem{
		ID:          p.ID,
		CategoriaID: p.CategoriaID,
		ImagenURL:   fmt.Sprintf("%s/prendas/%d/imagen", base, p.ID),
	}
}
