package stylist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/armariolabs/armario-api/internal/httperr"
	"github.com/armariolabs/armario-api/internal/models"
)

type fakeRepo struct {
	usuario *models.Usuario
	prendas []models.Prenda
	listErr error
}

func (f *fakeRepo) GetUsuarioByID(_ context.Context, id uint) (*models.Usuario, error) {
	if f.usuario == nil || f.usuario.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.usuario, nil
}

func (f *fakeRepo) SavePreferencias(_ context.Context, _ uint, _ []models.UserPreference) error {
	return nil
}

func (f *fakeRepo) ListPrendasByUsuario(_ context.Context, _ uint) ([]models.Prenda, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.prendas, nil
}

func (f *fakeRepo) ListPrendasRecientes(_ context.Context, _ uint, limit int) ([]models.Prenda, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.prendas) > limit {
		return f.prendas[:limit], nil
	}
	return f.prendas, nil
}

type fakeGenerator struct {
	lastPrompt string
	respuesta  string
	err        error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.respuesta, f.err
}

func TestChatBuildsContextAndFilters(t *testing.T) {
	repo := &fakeRepo{
		usuario: &models.Usuario{ID: 1, Nombre: "Ana"},
		prendas: []models.Prenda{
			{ID: 10, UsuarioID: 1, CategoriaID: 3}, // Jeans
			{ID: 11, UsuarioID: 1, CategoriaID: 2}, // Camisas
			{ID: 12, UsuarioID: 1, CategoriaID: 5}, // Faldas
		},
	}
	gen := &fakeGenerator{respuesta: "Ponte tus jeans con una de tus camisas."}
	uc := NewChat(repo, gen, nil)

	out, err := uc.Execute(context.Background(), ChatInput{UserID: 1, Mensaje: "¿qué me pongo?"})
	require.NoError(t, err)

	// El prompt lleva el nombre, las categorías del armario y el mensaje.
	assert.Contains(t, gen.lastPrompt, "Ana")
	assert.Contains(t, gen.lastPrompt, "Jeans")
	assert.Contains(t, gen.lastPrompt, "¿qué me pongo?")

	assert.Equal(t, "Ponte tus jeans con una de tus camisas.", out.Respuesta)

	// Solo vuelven las prendas cuya categoría menciona la respuesta.
	require.Len(t, out.Prendas, 2)
	assert.Equal(t, uint(10), out.Prendas[0].ID)
	assert.Equal(t, uint(11), out.Prendas[1].ID)
}

func TestChatNoMentionsNoImages(t *testing.T) {
	repo := &fakeRepo{
		usuario: &models.Usuario{ID: 1, Nombre: "Ana"},
		prendas: []models.Prenda{{ID: 10, UsuarioID: 1, CategoriaID: 3}},
	}
	gen := &fakeGenerator{respuesta: "Hoy quédate en pijama."}
	uc := NewChat(repo, gen, nil)

	out, err := uc.Execute(context.Background(), ChatInput{UserID: 1, Mensaje: "hola"})
	require.NoError(t, err)
	assert.Empty(t, out.Prendas)
}

func TestChatEmptyCloset(t *testing.T) {
	repo := &fakeRepo{usuario: &models.Usuario{ID: 1, Nombre: "Ana"}}
	gen := &fakeGenerator{respuesta: "Primero sube algunas prendas."}
	uc := NewChat(repo, gen, nil)

	out, err := uc.Execute(context.Background(), ChatInput{UserID: 1, Mensaje: "hola"})
	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, "Todavía no tiene prendas")
	assert.Empty(t, out.Prendas)
}

func TestChatUserNotFound(t *testing.T) {
	uc := NewChat(&fakeRepo{}, &fakeGenerator{}, nil)

	_, err := uc.Execute(context.Background(), ChatInput{UserID: 5, Mensaje: "hola"})
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestChatGeneratorError(t *testing.T) {
	repo := &fakeRepo{usuario: &models.Usuario{ID: 1, Nombre: "Ana"}}
	gen := &fakeGenerator{err: errors.New("model timeout")}
	uc := NewChat(repo, gen, nil)

	_, err := uc.Execute(context.Background(), ChatInput{UserID: 1, Mensaje: "hola"})
	assert.ErrorContains(t, err, "model timeout")
}
