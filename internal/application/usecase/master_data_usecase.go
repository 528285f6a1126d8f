package usecase

import (
	"context"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

// MasterDataUseCase lectura de catálogos (piedras, etapas, cantos, acabados, HSN).
type MasterDataUseCase struct {
	repo repository.MasterDataRepository
}

// NewMasterDataUseCase construye el caso de uso.
func NewMasterDataUseCase(repo repository.MasterDataRepository) *MasterDataUseCase {
	return &MasterDataUseCase{repo: repo}
}

// Stones lista el catálogo de piedras.
func (uc *MasterDataUseCase) Stones(ctx context.Context) ([]dto.StoneResponse, error) {
	list, err := uc.repo.Stones(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoneResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.StoneResponse{ID: s.ID, StoneName: s.StoneName, StoneType: s.StoneType})
	}
	return out, nil
}

// Stages lista las etapas de proceso.
func (uc *MasterDataUseCase) Stages(ctx context.Context) ([]dto.LookupResponse, error) {
	return lookups(uc.repo.Stages(ctx))
}

// EdgesTypes lista los tipos de canto.
func (uc *MasterDataUseCase) EdgesTypes(ctx context.Context) ([]dto.LookupResponse, error) {
	return lookups(uc.repo.EdgesTypes(ctx))
}

// FinishingTypes lista los acabados.
func (uc *MasterDataUseCase) FinishingTypes(ctx context.Context) ([]dto.LookupResponse, error) {
	return lookups(uc.repo.FinishingTypes(ctx))
}

// HSNCodes lista los códigos HSN ordenados por código.
func (uc *MasterDataUseCase) HSNCodes(ctx context.Context) ([]dto.HSNCodeResponse, error) {
	list, err := uc.repo.HSNCodes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HSNCodeResponse, 0, len(list))
	for _, h := range list {
		out = append(out, dto.HSNCodeResponse{ID: h.ID, Code: h.Code, Description: h.Description})
	}
	return out, nil
}

func lookups(list []*entity.LookupEntry, err error) ([]dto.LookupResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.LookupResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.LookupResponse{ID: e.ID, Name: e.Name})
	}
	return out, nil
}
