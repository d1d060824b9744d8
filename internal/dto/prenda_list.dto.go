package dto

// PrendaListItem es lo que devuelve el listado: nunca los bytes, solo las
// URLs para pedirlos.
type PrendaListItem struct {
	ID           uint   `json:"id"`
	CategoriaID  int    `json:"id_prenda"`
	ImagenURL    string `json:"imagenUrl"`
	MiniaturaURL string `json:"miniaturaUrl,omitempty"`
}
