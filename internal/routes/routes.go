package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/armariolabs/armario-api/internal/ai"
	"github.com/armariolabs/armario-api/internal/audit"
	"github.com/armariolabs/armario-api/internal/cache"
	"github.com/armariolabs/armario-api/internal/config"
	"github.com/armariolabs/armario-api/internal/handlers"
	infraRepo "github.com/armariolabs/armario-api/internal/infra/repository"
	"github.com/armariolabs/armario-api/internal/middleware"
	"github.com/armariolabs/armario-api/internal/storage"
	ucPreferences "github.com/armariolabs/armario-api/internal/usecase/preferences"
	ucStylist "github.com/armariolabs/armario-api/internal/usecase/stylist"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	closetRepo := infraRepo.NewClosetGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// nil cuando no están configurados
	mirror := storage.NewMirror(cfg)
	prendaCache := cache.NewPrendaCache(cfg)

	gemini := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// ======================================================
	// USE CASES
	// ======================================================
	savePreferencesUC := ucPreferences.NewSavePreferences(
		closetRepo,
		auditDispatcher,
	)

	chatUC := ucStylist.NewChat(
		closetRepo,
		gemini,
		auditDispatcher,
	)

	suggestOutfitUC := ucStylist.NewSuggestOutfit(
		closetRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db)
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	preferencesHandler := handlers.NewPreferencesHandler(savePreferencesUC)
	prendaHandler := handlers.NewPrendaHandler(db, cfg, mirror, prendaCache, auditDispatcher)
	chatHandler := handlers.NewChatHandler(chatUC)
	outfitHandler := handlers.NewOutfitHandler(suggestOutfitUC)

	// ======================================================
	// RUTAS
	// ======================================================
	r.GET("/", publicHandler.Root)
	r.GET("/catalogo", publicHandler.Catalogo)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	r.POST("/preferencias", preferencesHandler.Save)

	prendas := r.Group("/prendas")
	{
		prendas.POST("", prendaHandler.Upload)
		prendas.GET("", prendaHandler.List)
		prendas.GET("/:id/imagen", prendaHandler.Imagen)
		prendas.GET("/:id/miniatura", prendaHandler.Miniatura)

		// Con token se exige propiedad; sin token rige el contrato
		// abierto que esperan los clientes viejos.
		prendas.DELETE("/:id", middleware.OptionalAuth(cfg), prendaHandler.Delete)
	}

	r.GET("/atuendo", outfitHandler.Suggest)

	r.POST("/chat-ia", chatHandler.Chat)
}
