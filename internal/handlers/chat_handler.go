package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/armariolabs/armario-api/internal/dto"
	"github.com/armariolabs/armario-api/internal/httperr"
	ucStylist "github.com/armariolabs/armario-api/internal/usecase/stylist"
)

type ChatHandler struct {
	chatUC *ucStylist.Chat
}

func NewChatHandler(chatUC *ucStylist.Chat) *ChatHandler {
	return &ChatHandler{chatUC: chatUC}
}

type ChatRequest struct {
	Mensaje   string `json:"mensaje"`
	UsuarioID uint   `json:"usuarioId"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cuerpo de la petición inválido")
		return
	}

	if req.Mensaje == "" || req.UsuarioID == 0 {
		httperr.BadRequest(c, "missing_fields", "Faltan datos (mensaje y usuarioId son obligatorios)")
		return
	}

	out, err := h.chatUC.Execute(c.Request.Context(), ucStylist.ChatInput{
		UserID:  req.UsuarioID,
		Mensaje: req.Mensaje,
	})
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			httperr.NotFound(c, "user_not_found", "Usuario no encontrado")
			return
		}
		log.Error().Err(err).Uint("user_id", req.UsuarioID).Msg("ai chat failed")
		httperr.Internal(c, "ai_error", "No se pudo obtener respuesta de la IA")
		return
	}

	base := baseURL(c)
	imagenes := make([]dto.PrendaListItem, 0, len(out.Prendas))
	for _, p := range out.Prendas {
		imagenes = append(imagenes, dto.PrendaListItem{
			ID:          p.ID,
			CategoriaID: p.CategoriaID,
			ImagenURL:   fmt.Sprintf("%s/prendas/%d/imagen", base, p.ID),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"respuesta": out.Respuesta,
		"imagenes":  imagenes,
	})
}
