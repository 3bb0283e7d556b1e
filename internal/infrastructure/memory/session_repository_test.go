package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/memory"
)

func TestStaticSessionRepository(t *testing.T) {
	repo := memory.NewStaticSessionRepository(" demo.myshopify.com ", "shpat_1")

	s, err := repo.GetOffline(context.Background(), "demo.myshopify.com")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "offline_demo.myshopify.com", s.ID)
	assert.Equal(t, "shpat_1", s.AccessToken)

	s, err = repo.GetOffline(context.Background(), "otra.myshopify.com")
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestStaticSessionRepository_SinToken(t *testing.T) {
	s, err := memory.NewStaticSessionRepository("demo.myshopify.com", "").GetOffline(context.Background(), "demo.myshopify.com")
	assert.NoError(t, err)
	assert.Nil(t, s)
}
