package hospitality

import "time"

// Type representa a categoria do estabelecimento
type Type string

// Constantes para Type
const (
	TypeAttraction Type = "attraction" // Atração turística
	TypeHotel      Type = "hotel"      // Hotel
	TypeRestaurant Type = "restaurant" // Restaurante
)

// IsValid verifica se a categoria é uma das conhecidas
func (t Type) IsValid() bool {
	switch t {
	case TypeAttraction, TypeHotel, TypeRestaurant:
		return true
	}
	return false
}

// Hospitality representa um estabelecimento turístico
type Hospitality struct {
	ID          string    `json:"id" firestore:"-"`
	Type        Type      `json:"type" firestore:"type"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	CreatedOn   time.Time `json:"createdOn" firestore:"createdOn"`
}
