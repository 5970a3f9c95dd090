package hospitality

import "context"

// Update carrega os campos aceitos por Repository.Update. Campos nil
// não são alterados.
type Update struct {
	Type        *Type
	Name        *string
	Description *string
}

// Repository define a interface para operações de persistência de
// estabelecimentos
type Repository interface {
	// Create persiste um novo estabelecimento
	Create(ctx context.Context, h *Hospitality) error

	// FindByID busca um estabelecimento pelo ID
	FindByID(ctx context.Context, id string) (*Hospitality, error)

	// FindAll retorna todos os estabelecimentos cadastrados
	FindAll(ctx context.Context) ([]Hospitality, error)

	// Update aplica apenas os campos preenchidos e retorna o
	// estabelecimento atualizado
	Update(ctx context.Context, id string, update *Update) (*Hospitality, error)

	// Delete remove um estabelecimento
	Delete(ctx context.Context, id string) error
}
