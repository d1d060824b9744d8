package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/armariolabs/armario-api/internal/catalog"
	"github.com/armariolabs/armario-api/internal/httperr"
	"github.com/armariolabs/armario-api/internal/httpresp"
)

type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

// Root es la ruta de prueba de conexión: consulta la hora del servidor de
// base de datos para verificar el pool de punta a punta.
func (h *PublicHandler) Root(c *gin.Context) {
	var now time.Time
	if err := h.db.Raw("SELECT NOW()").Scan(&now).Error; err != nil {
		log.Error().Err(err).Msg("database ping failed")
		httperr.Internal(c, "db_error", "Error conectando a la base de datos")
		return
	}

	httpresp.Mensaje(c, http.StatusOK, "Conexión exitosa", gin.H{
		"serverTime": now,
	})
}

// Catalogo sirve el vocabulario de etiquetas completo; es la única fuente de
// verdad para los ids que usa el cliente.
func (h *PublicHandler) Catalogo(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"colores":   catalog.Colores,
		"estilos":   catalog.Estilos,
		"ocasiones": catalog.Ocasiones,
		"prendas":   catalog.Categorias,
	})
}
