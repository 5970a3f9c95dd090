package dto

import (
	"time"

	"github.com/hugohenrick/turismo-backend/internal/domain/hospitality"
)

// HospitalityRequest representa os dados para criação de um estabelecimento
type HospitalityRequest struct {
	Type        string `json:"type" binding:"required,oneof=attraction hotel restaurant"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required,min=1,max=2000"`
}

// HospitalityUpdateRequest representa os dados para atualização
// parcial de um estabelecimento; campos omitidos não são alterados
type HospitalityUpdateRequest struct {
	Type        *string `json:"type" binding:"omitempty,oneof=attraction hotel restaurant"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,min=1,max=2000"`
}

// ToHospitalityUpdate converte o DTO de atualização para o domínio
func (r *HospitalityUpdateRequest) ToHospitalityUpdate() *hospitality.Update {
	update := &hospitality.Update{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.Type != nil {
		t := hospitality.Type(*r.Type)
		update.Type = &t
	}
	return update
}

// HospitalityResponse representa um estabelecimento na resposta
type HospitalityResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedOn   time.Time `json:"createdOn"`
}

// ToHospitalityResponse converte um estabelecimento do domínio para o DTO de resposta
func ToHospitalityResponse(h *hospitality.Hospitality) HospitalityResponse {
	return HospitalityResponse{
		ID:          h.ID,
		Type:        string(h.Type),
		Name:        h.Name,
		Description: h.Description,
		CreatedOn:   h.CreatedOn,
	}
}

// ToHospitalityResponseList converte uma lista de estabelecimentos do domínio
func ToHospitalityResponseList(items []hospitality.Hospitality) []HospitalityResponse {
	out := make([]HospitalityResponse, 0, len(items))
	for i := range items {
		out = append(out, ToHospitalityResponse(&items[i]))
	}
	return out
}
