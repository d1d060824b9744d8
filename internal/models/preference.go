package models

// UserPreference asocia un usuario con una etiqueta del catálogo fijo.
// El índice único hace idempotente el guardado masivo: reinsertar el mismo
// par (usuario, etiqueta) no crea filas nuevas.
type UserPreference struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"uniqueIndex:idx_user_kind_tag;not null" json:"user_id"`
	Kind   string `gorm:"size:20;uniqueIndex:idx_user_kind_tag;not null" json:"kind"`
	TagID  int    `gorm:"uniqueIndex:idx_user_kind_tag;not null" json:"tag_id"`
}
