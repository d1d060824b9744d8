package models

import "time"

// Prenda guarda la foto en la base de datos; Datos es la imagen original tal
// cual se subió y Miniatura una versión reducida en WebP (puede faltar si la
// imagen no se pudo decodificar).
type Prenda struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UsuarioID uint    `gorm:"index;not null" json:"usuario_id"`
	Usuario   Usuario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CategoriaID int `gorm:"not null" json:"id_prenda"`

	MimeType  string `gorm:"size:100;not null" json:"-"`
	Datos     []byte `gorm:"type:bytea;not null" json:"-"`
	Miniatura []byte `gorm:"type:bytea" json:"-"`

	// Clave del espejo opcional en S3, vacía si no está configurado.
	S3Key string `gorm:"size:200" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
