package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

const apiKeyPrefix = "bt_live_"

// APIKeyUseCase emisión y administración de llaves de integración. La llave en
// claro existe solo en la respuesta de creación; en reposo se guarda su hash
// SHA-256 y los últimos cuatro caracteres para el listado enmascarado.
type APIKeyUseCase struct {
	repo repository.APIKeyRepository
}

// NewAPIKeyUseCase construye el caso de uso.
func NewAPIKeyUseCase(repo repository.APIKeyRepository) *APIKeyUseCase {
	return &APIKeyUseCase{repo: repo}
}

// Create emite una llave nueva: prefijo bt_live_ más 16 bytes aleatorios en hex.
func (uc *APIKeyUseCase) Create(ctx context.Context, createdBy string, in dto.CreateAPIKeyRequest) (*dto.CreateAPIKeyResponse, error) {
	if in.Name == "" || len(in.Permissions) == 0 {
		return nil, domain.ErrInvalidInput
	}

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generando llave: %w", err)
	}
	plainKey := apiKeyPrefix + hex.EncodeToString(raw)
	hash := sha256.Sum256([]byte(plainKey))

	key := &entity.APIKey{
		ID:          uuid.New().String(),
		Name:        in.Name,
		KeyHash:     hex.EncodeToString(hash[:]),
		KeyLast4:    plainKey[len(plainKey)-4:],
		Permissions: in.Permissions,
		IsActive:    true,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, key); err != nil {
		return nil, err
	}
	return &dto.CreateAPIKeyResponse{
		APIKey:   toAPIKeyDTO(key),
		PlainKey: plainKey,
	}, nil
}

// List llaves de la organización, siempre enmascaradas.
func (uc *APIKeyUseCase) List(ctx context.Context) ([]dto.APIKeyDTO, error) {
	keys, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.APIKeyDTO, 0, len(keys))
	for _, k := range keys {
		out = append(out, toAPIKeyDTO(k))
	}
	return out, nil
}

// Revoke baja lógica de la llave.
func (uc *APIKeyUseCase) Revoke(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Revoke(ctx, id)
}

func toAPIKeyDTO(k *entity.APIKey) dto.APIKeyDTO {
	return dto.APIKeyDTO{
		ID:          k.ID,
		Name:        k.Name,
		Key:         apiKeyPrefix + "••••••••" + k.KeyLast4,
		Permissions: k.Permissions,
		IsActive:    k.IsActive,
		LastUsedAt:  k.LastUsedAt,
		CreatedAt:   k.CreatedAt,
	}
}
