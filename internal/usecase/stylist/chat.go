package stylist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/armariolabs/armario-api/internal/audit"
	"github.com/armariolabs/armario-api/internal/catalog"
	domain "github.com/armariolabs/armario-api/internal/domain/closet"
	"github.com/armariolabs/armario-api/internal/httperr"
	"github.com/armariolabs/armario-api/internal/models"
)

// TextGenerator es el servicio de texto generativo externo; el cliente de
// Gemini lo implementa.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const maxPrendasEnContexto = 5

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ChatInput struct {
	UserID  uint
	Mensaje string
}

type ChatOutput struct {
	Respuesta string
	// Prendas del usuario cuya categoría aparece mencionada en la
	// respuesta del modelo.
	Prendas []models.Prenda
}

// ======================================================
// USE CASE
// ======================================================

type Chat struct {
	repo  domain.Repository
	gen   TextGenerator
	audit *audit.Dispatcher
}

func NewChat(
	repo domain.Repository,
	gen TextGenerator,
	audit *audit.Dispatcher,
) *Chat {
	return &Chat{
		repo:  repo,
		gen:   gen,
		audit: audit,
	}
}

func (uc *Chat) Execute(ctx context.Context, in ChatInput) (*ChatOutput, error) {

	usuario, err := uc.repo.GetUsuarioByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	recientes, err := uc.repo.ListPrendasRecientes(ctx, in.UserID, maxPrendasEnContexto)
	if err != nil {
		return nil, err
	}

	respuesta, err := uc.gen.Generate(ctx, buildPrompt(usuario.Nombre, recientes, in.Mensaje))
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &in.UserID,
		Action: "chat_requested",
		Entity: "chat",
	})

	return &ChatOutput{
		Respuesta: respuesta,
		Prendas:   matchPrendas(recientes, respuesta),
	}, nil
}

func buildPrompt(nombre string, prendas []models.Prenda, mensaje string) string {
	var b strings.Builder

	b.WriteString("Eres un asistente de moda amable y directo. ")
	fmt.Fprintf(&b, "El usuario se llama %s.\n", nombre)

	if len(prendas) == 0 {
		b.WriteString("Todavía no tiene prendas registradas en su armario.\n")
	} else {
		b.WriteString("Estas son sus prendas más recientes:\n")
		for _, p := range prendas {
			fmt.Fprintf(&b, "- %s\n", catalog.NombreCategoria(p.CategoriaID))
		}
	}

	b.WriteString("Responde en español y, cuando sugieras un atuendo, menciona ")
	b.WriteString("las categorías de prenda por su nombre.\n\n")
	fmt.Fprintf(&b, "Mensaje del usuario: %s", mensaje)

	return b.String()
}

// matchPrendas filtra las prendas del contexto cuya categoría fue nombrada
// en la respuesta (búsqueda por subcadena, sin mayúsculas).
func matchPrendas(prendas []models.Prenda, respuesta string) []models.Prenda {
	mencionadas := catalog.CategoriasEnTexto(respuesta)
	if len(mencionadas) == 0 {
		return nil
	}

	enTexto := make(map[int]bool, len(mencionadas))
	for _, id := range mencionadas {
		enTexto[id] = true
	}

	var out []models.Prenda
	for _, p := range prendas {
		if enTexto[p.CategoriaID] {
			out = append(out, p)
		}
	}
	return out
}
