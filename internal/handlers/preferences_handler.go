package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/armariolabs/armario-api/internal/httperr"
	"github.com/armariolabs/armario-api/internal/httpresp"
	ucPreferences "github.com/armariolabs/armario-api/internal/usecase/preferences"
)

type PreferencesHandler struct {
	saveUC *ucPreferences.SavePreferences
}

func NewPreferencesHandler(saveUC *ucPreferences.SavePreferences) *PreferencesHandler {
	return &PreferencesHandler{saveUC: saveUC}
}

// --------- Requests ---------

type SavePreferencesRequest struct {
	UserID    uint  `json:"userId"`
	Colores   []int `json:"colores"`
	Estilos   []int `json:"estilos"`
	Ocasiones []int `json:"ocasiones"`
	Prendas   []int `json:"prendas"`
}

// --------- Handlers ---------

func (h *PreferencesHandler) Save(c *gin.Context) {
	var req SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cuerpo de la petición inválido")
		return
	}

	if req.UserID == 0 {
		httperr.BadRequest(c, "missing_user_id", "Falta el userId")
		return
	}

	err := h.saveUC.Execute(c.Request.Context(), ucPreferences.SavePreferencesInput{
		UserID:    req.UserID,
		Colores:   req.Colores,
		Estilos:   req.Estilos,
		Ocasiones: req.Ocasiones,
		Prendas:   req.Prendas,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "user_not_found"):
			httperr.NotFound(c, "user_not_found", "Usuario no encontrado")
		case httperr.IsBusiness(err, "invalid_tag"):
			httperr.BadRequest(c, "invalid_tag", "Alguna etiqueta no pertenece al catálogo")
		default:
			// La transacción ya se revirtió; afuera solo va el mensaje
			// genérico.
			log.Error().Err(err).Uint("user_id", req.UserID).Msg("failed to save preferences")
			httperr.Internal(c, "internal_error", "Error guardando preferencias")
		}
		return
	}

	httpresp.Mensaje(c, http.StatusOK, "Preferencias guardadas con éxito", nil)
}
