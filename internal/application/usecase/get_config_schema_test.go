package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/omnitab/internal/application/usecase"
)

type stubSchema struct {
	data []byte
	err  error
}

func (s stubSchema) JSONSchema() ([]byte, error) { return s.data, s.err }

func TestGetConfigSchema(t *testing.T) {
	out, err := usecase.NewGetConfigSchemaUseCase(stubSchema{data: []byte(`{}`)}).Execute(testContext())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))

	_, err = usecase.NewGetConfigSchemaUseCase(stubSchema{err: errors.New("reflect")}).Execute(testContext())
	require.Error(t, err)
}
