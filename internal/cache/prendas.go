// Package cache guarda el listado de prendas por usuario en Redis para no
// recorrer la tabla de imágenes en cada refresco del cliente. Igual que el
// espejo S3, un caché nil significa desactivado.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/armariolabs/armario-api/internal/config"
	"github.com/armariolabs/armario-api/internal/dto"
)

const listTTL = 5 * time.Minute

type PrendaCache struct {
	client *redis.Client
}

func NewPrendaCache(cfg *config.Config) *PrendaCache {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil
	}
	return &PrendaCache{client: redis.NewClient(opts)}
}

func listKey(userID uint) string {
	return fmt.Sprintf("prendas:list:%d", userID)
}

func (c *PrendaCache) GetList(ctx context.Context, userID uint) ([]dto.PrendaListItem, bool) {
	raw, err := c.client.Get(ctx, listKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}

	var items []dto.PrendaListItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *PrendaCache) SetList(ctx context.Context, userID uint, items []dto.PrendaListItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.client.Set(ctx, listKey(userID), raw, listTTL)
}

// Invalidate se llama tras cada subida o borrado del usuario.
func (c *PrendaCache) Invalidate(ctx context.Context, userID uint) {
	c.client.Del(ctx, listKey(userID))
}
