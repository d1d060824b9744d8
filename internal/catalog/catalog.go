// Package catalog es la única fuente de verdad del vocabulario de etiquetas
// (colores, estilos, ocasiones y categorías de prenda). Los ids son parte del
// contrato con el cliente móvil; se sirven en GET /catalogo en vez de
// duplicarse a mano en cada pantalla.
package catalog

import "strings"

type Zona string

const (
	ZonaSuperior Zona = "superior"
	ZonaInferior Zona = "inferior"
	ZonaOtro     Zona = "otro"
)

type Tag struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

type Categoria struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Zona   Zona   `json:"zona"`
}

const (
	KindColor   = "color"
	KindEstilo  = "estilo"
	KindOcasion = "ocasion"
	KindPrenda  = "prenda"
)

var Colores = []Tag{
	{1, "Negro"}, {2, "Blanco"}, {3, "Gris"}, {4, "Rojo"},
	{5, "Azul"}, {6, "Verde"}, {7, "Amarillo"}, {8, "Naranja"},
	{9, "Morado"}, {10, "Rosado"}, {11, "Beige"}, {12, "Marrón"},
}

var Estilos = []Tag{
	{1, "Casual"}, {2, "Formal"}, {3, "Deportivo"},
	{4, "Urbano"}, {5, "Elegante"}, {6, "Minimalista"},
}

var Ocasiones = []Tag{
	{1, "Trabajo"}, {2, "Estudio"}, {3, "Deporte"}, {4, "Fiesta"},
	{5, "Eventos formales"}, {6, "Casa"}, {7, "Viajes"}, {8, "Reuniones sociales"},
}

// Vestidos y Ropa deportiva quedan fuera del generador de atuendos: un
// vestido es un atuendo completo y la ropa deportiva mezcla ambas zonas.
var Categorias = []Categoria{
	{1, "Camisetas", ZonaSuperior},
	{2, "Camisas", ZonaSuperior},
	{3, "Jeans", ZonaInferior},
	{4, "Pantalones", ZonaInferior},
	{5, "Faldas", ZonaInferior},
	{6, "Vestidos", ZonaOtro},
	{7, "Sudaderas", ZonaSuperior},
	{8, "Blazers", ZonaSuperior},
	{9, "Chaquetas", ZonaSuperior},
	{10, "Shorts", ZonaInferior},
	{11, "Ropa deportiva", ZonaOtro},
}

func validTag(tags []Tag, id int) bool {
	for _, t := range tags {
		if t.ID == id {
			return true
		}
	}
	return false
}

func ValidColor(id int) bool   { return validTag(Colores, id) }
func ValidEstilo(id int) bool  { return validTag(Estilos, id) }
func ValidOcasion(id int) bool { return validTag(Ocasiones, id) }

func ValidCategoria(id int) bool {
	_, ok := categoriaByID(id)
	return ok
}

func categoriaByID(id int) (Categoria, bool) {
	for _, c := range Categorias {
		if c.ID == id {
			return c, true
		}
	}
	return Categoria{}, false
}

func NombreCategoria(id int) string {
	if c, ok := categoriaByID(id); ok {
		return c.Nombre
	}
	return ""
}

func ZonaDeCategoria(id int) Zona {
	if c, ok := categoriaByID(id); ok {
		return c.Zona
	}
	return ZonaOtro
}

// CategoriasEnTexto devuelve los ids de categoría cuyos nombres aparecen en
// el texto, sin distinguir mayúsculas. Lo usa el chat para adjuntar las
// prendas que la IA mencionó.
func CategoriasEnTexto(texto string) []int {
	lower := strings.ToLower(texto)
	var ids []int
	for _, c := range Categorias {
		if strings.Contains(lower, strings.ToLower(c.Nombre)) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
