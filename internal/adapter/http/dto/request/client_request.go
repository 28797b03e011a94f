package request

import "oficina_nova_brasil/internal/domain/entities"

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	TaxID   string `json:"taxId" binding:"required"`
	Address string `json:"address"`
}

func (r ClientRequest) ToDraft() entities.ClientDraft {
	return entities.ClientDraft{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		TaxID:   r.TaxID,
		Address: r.Address,
	}
}

// UpdateClientRequest is a partial update; absent fields are kept.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	TaxID   *string `json:"taxId"`
	Address *string `json:"address"`
}

func (r UpdateClientRequest) ToPatch() entities.ClientPatch {
	return entities.ClientPatch{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		TaxID:   r.TaxID,
		Address: r.Address,
	}
}
