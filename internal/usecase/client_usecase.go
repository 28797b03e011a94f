package usecase

import (
	"context"
	"strings"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IClientUseCase exposes customer registration.
//
// Deleting a client does not cascade: its cars and orders keep the id and
// render with a "client not found" placeholder.
type IClientUseCase interface {
	ListClients(ctx context.Context, search string) ([]entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
	CreateClient(ctx context.Context, draft entities.ClientDraft) (entities.Client, error)
	UpdateClient(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	log  *zap.Logger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, log *zap.Logger) *ClientUseCase {
	return &ClientUseCase{repo: repo, log: orNop(log)}
}

// ListClients filters by case-insensitive substring of name, phone, email or
// tax id. An empty search returns everything.
func (u *ClientUseCase) ListClients(ctx context.Context, search string) ([]entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := normalizeSearch(search)
	if needle == "" {
		return clients, nil
	}
	out := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if containsFold(c.Name, needle) || containsFold(c.Phone, needle) ||
			containsFold(c.Email, needle) || containsFold(c.TaxID, needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *ClientUseCase) GetClient(ctx context.Context, id string) (entities.Client, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Client{}, err
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, translateNotFound(err, ErrClientNotFound)
	}
	return c, nil
}

func (u *ClientUseCase) CreateClient(ctx context.Context, draft entities.ClientDraft) (entities.Client, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Phone = strings.TrimSpace(draft.Phone)
	draft.Email = strings.TrimSpace(draft.Email)
	draft.TaxID = strings.TrimSpace(draft.TaxID)
	draft.Address = strings.TrimSpace(draft.Address)

	switch {
	case draft.Name == "":
		return entities.Client{}, requiredField("name")
	case draft.Phone == "":
		return entities.Client{}, requiredField("phone")
	case draft.TaxID == "":
		return entities.Client{}, requiredField("taxId")
	}

	c, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.Client{}, err
	}
	u.log.Info("client created", zap.String("client_id", c.ID))
	return c, nil
}

func (u *ClientUseCase) UpdateClient(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, error) {
	id, err := cleanID(id)
	if err != nil {
		return entities.Client{}, err
	}
	patch.Name = trimPtr(patch.Name)
	patch.Phone = trimPtr(patch.Phone)
	patch.Email = trimPtr(patch.Email)
	patch.TaxID = trimPtr(patch.TaxID)
	patch.Address = trimPtr(patch.Address)

	switch {
	case blankPatch(patch.Name):
		return entities.Client{}, requiredField("name")
	case blankPatch(patch.Phone):
		return entities.Client{}, requiredField("phone")
	case blankPatch(patch.TaxID):
		return entities.Client{}, requiredField("taxId")
	}

	c, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Client{}, translateNotFound(err, ErrClientNotFound)
	}
	return c, nil
}

func (u *ClientUseCase) DeleteClient(ctx context.Context, id string) error {
	id, err := cleanID(id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return translateNotFound(err, ErrClientNotFound)
	}
	u.log.Info("client deleted", zap.String("client_id", id))
	return nil
}
