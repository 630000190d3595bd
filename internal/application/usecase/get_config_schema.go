package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/omnitab/internal/application/port"
)

// GetConfigSchemaUseCase retrieves the configuration JSON schema.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// Execute returns the schema document.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context) ([]byte, error) {
	schema, err := uc.provider.JSONSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to generate config schema: %w", err)
	}
	return schema, nil
}
