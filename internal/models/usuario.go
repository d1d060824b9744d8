package models

import "time"

type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre          string    `gorm:"size:100;not null" json:"nombre"`
	Apellido        string    `gorm:"size:100;not null" json:"apellido"`
	FechaNacimiento time.Time `gorm:"type:date;not null" json:"fecha_nacimiento"`

	Email      string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Contrasena string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
