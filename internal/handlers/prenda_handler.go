package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/armariolabs/armario-api/internal/audit"
	"github.com/armariolabs/armario-api/internal/cache"
	"github.com/armariolabs/armario-api/internal/catalog"
	"github.com/armariolabs/armario-api/internal/config"
	"github.com/armariolabs/armario-api/internal/dto"
	"github.com/armariolabs/armario-api/internal/httperr"
	"github.com/armariolabs/armario-api/internal/httpresp"
	"github.com/armariolabs/armario-api/internal/imaging"
	"github.com/armariolabs/armario-api/internal/middleware"
	"github.com/armariolabs/armario-api/internal/models"
	"github.com/armariolabs/armario-api/internal/storage"
)

// garmentMirror es lo que el handler necesita del espejo S3.
type garmentMirror interface {
	Upload(ctx context.Context, data []byte, mimeType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type PrendaHandler struct {
	db     *gorm.DB
	config *config.Config
	mirror garmentMirror
	cache  *cache.PrendaCache
	audit  *audit.Dispatcher
}

func NewPrendaHandler(
	db *gorm.DB,
	cfg *config.Config,
	mirror *storage.Mirror,
	cache *cache.PrendaCache,
	audit *audit.Dispatcher,
) *PrendaHandler {
	h := &PrendaHandler{
		db:     db,
		config: cfg,
		cache:  cache,
		audit:  audit,
	}
	// Un *Mirror nil dentro de la interfaz dejaría de compararse como nil.
	if mirror != nil {
		h.mirror = mirror
	}
	return h
}

// --------- Upload ---------

// Upload recibe el multipart (usuarioId, id_prenda, imagen) y guarda los
// bytes con su MIME declarado. La miniatura y el espejo S3 son extras que no
// hacen fallar la subida.
func (h *PrendaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.config.MaxUploadBytes)

	usuarioIDStr := c.PostForm("usuarioId")
	categoriaIDStr := c.PostForm("id_prenda")
	file, err := c.FormFile("imagen")

	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httperr.BadRequest(c, "file_too_large", "La imagen supera el tamaño máximo permitido")
			return
		}
	}

	if usuarioIDStr == "" || categoriaIDStr == "" || file == nil {
		httperr.BadRequest(c, "missing_fields",
			"Faltan datos de la prenda (usuarioId, id_prenda e imagen son obligatorios)")
		return
	}

	usuarioID, err := strconv.ParseUint(usuarioIDStr, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "El usuarioId no es válido")
		return
	}

	categoriaID, err := strconv.Atoi(categoriaIDStr)
	if err != nil || !catalog.ValidCategoria(categoriaID) {
		httperr.BadRequest(c, "invalid_category", "Categoría de prenda inválida")
		return
	}

	var usuario models.Usuario
	if err := h.db.First(&usuario, uint(usuarioID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuario no encontrado")
			return
		}
		log.Error().Err(err).Msg("failed to look up user")
		httperr.Internal(c, "internal_error", "Error interno del servidor")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "No se pudo leer la imagen")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "No se pudo leer la imagen")
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	prenda := models.Prenda{
		UsuarioID:   usuario.ID,
		CategoriaID: categoriaID,
		MimeType:    mimeType,
		Datos:       data,
		Miniatura:   imaging.Thumbnail(data),
	}

	if h.mirror != nil {
		key, err := h.mirror.Upload(c.Request.Context(), data, mimeType)
		if err != nil {
			log.Warn().Err(err).Msg("s3 mirror upload failed")
		} else {
			prenda.S3Key = key
		}
	}

	if err := h.db.Create(&prenda).Error; err != nil {
		log.Error().Err(err).Msg("failed to store garment")
		// La fila es la copia canónica: si no existe, el objeto espejado
		// tampoco debe quedar.
		if h.mirror != nil && prenda.S3Key != "" {
			if derr := h.mirror.Delete(c.Request.Context(), prenda.S3Key); derr != nil {
				log.Warn().Err(derr).Str("key", prenda.S3Key).Msg("s3 mirror cleanup failed")
			}
		}
		httperr.Internal(c, "internal_error", "Error guardando la prenda")
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), usuario.ID)
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &usuario.ID,
		Action:   "garment_uploaded",
		Entity:   "prenda",
		EntityID: &prenda.ID,
	})

	httpresp.Mensaje(c, http.StatusOK, "Prenda guardada correctamente", gin.H{
		"id": prenda.ID,
	})
}

// --------- List ---------

type prendaRow struct {
	ID             uint
	CategoriaID    int
	TieneMiniatura bool
}

func (h *PrendaHandler) List(c *gin.Context) {
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

	ctx := c.Request.Context()

	if h.cache != nil {
		if items, ok := h.cache.GetList(ctx, uint(usuarioID)); ok {
			httpresp.OK(c, items)
			return
		}
	}

	var rows []prendaRow
	if err := h.db.Model(&models.Prenda{}).
		Select("id", "categoria_id", "(miniatura IS NOT NULL) AS tiene_miniatura").
		Where("usuario_id = ?", uint(usuarioID)).
		Order("created_at DESC").
		Scan(&rows).Error; err != nil {
		log.Error().Err(err).Msg("failed to list garments")
		httperr.Internal(c, "internal_error", "Error al cargar prendas")
		return
	}

	base := baseURL(c)
	items := make([]dto.PrendaListItem, 0, len(rows))
	for _, r := range rows {
		item := dto.PrendaListItem{
			ID:          r.ID,
			CategoriaID: r.CategoriaID,
			ImagenURL:   fmt.Sprintf("%s/prendas/%d/imagen", base, r.ID),
		}
		if r.TieneMiniatura {
			item.MiniaturaURL = fmt.Sprintf("%s/prendas/%d/miniatura", base, r.ID)
		}
		items = append(items, item)
	}

	if h.cache != nil {
		h.cache.SetList(ctx, uint(usuarioID), items)
	}

	// El cliente espera un array JSON plano, sin envoltorio.
	httpresp.OK(c, items)
}

// --------- Binary fetch ---------

func (h *PrendaHandler) Imagen(c *gin.Context) {
	id := c.Param("id")

	var prenda models.Prenda
	if err := h.db.Select("id", "mime_type", "datos").First(&prenda, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "garment_not_found", "Prenda no encontrada")
			return
		}
		log.Error().Err(err).Msg("failed to fetch garment")
		httperr.Internal(c, "internal_error", "Error interno del servidor")
		return
	}

	c.Data(http.StatusOK, prenda.MimeType, prenda.Datos)
}

func (h *PrendaHandler) Miniatura(c *gin.Context) {
	id := c.Param("id")

	var prenda models.Prenda
	if err := h.db.Select("id", "miniatura").First(&prenda, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "garment_not_found", "Prenda no encontrada")
			return
		}
		log.Error().Err(err).Msg("failed to fetch thumbnail")
		httperr.Internal(c, "internal_error", "Error interno del servidor")
		return
	}

	if len(prenda.Miniatura) == 0 {
		httperr.NotFound(c, "thumbnail_not_found", "La prenda no tiene miniatura")
		return
	}

	c.Data(http.StatusOK, "image/webp", prenda.Miniatura)
}

// --------- Delete ---------

// Delete borra por id. Si la petición trae un token, la prenda tiene que ser
// del usuario autenticado; una prenda ajena responde igual que una
// inexistente. Sin token se mantiene el contrato abierto original.
func (h *PrendaHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var prenda models.Prenda
	if err := h.db.Select("id", "usuario_id", "s3_key").First(&prenda, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "garment_not_found", "Prenda no encontrada")
			return
		}
		log.Error().Err(err).Msg("failed to fetch garment")
		httperr.Internal(c, "internal_error", "Error interno del servidor")
		return
	}

	if authID, ok := middleware.AuthUserID(c); ok && authID != prenda.UsuarioID {
		httperr.NotFound(c, "garment_not_found", "Prenda no encontrada")
		return
	}

	if err := h.db.Delete(&models.Prenda{}, prenda.ID).Error; err != nil {
		log.Error().Err(err).Msg("failed to delete garment")
		httperr.Internal(c, "internal_error", "Error eliminando la prenda")
		return
	}

	if h.mirror != nil && prenda.S3Key != "" {
		if err := h.mirror.Delete(c.Request.Context(), prenda.S3Key); err != nil {
			log.Warn().Err(err).Str("key", prenda.S3Key).Msg("s3 mirror delete failed")
		}
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), prenda.UsuarioID)
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &prenda.UsuarioID,
		Action:   "garment_deleted",
		Entity:   "prenda",
		EntityID: &prenda.ID,
	})

	httpresp.Mensaje(c, http.StatusOK, "Prenda eliminada", gin.H{
		"id": prenda.ID,
	})
}

// --------- helpers ---------

func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}
