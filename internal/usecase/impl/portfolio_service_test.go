package impl

import (
	"context"
	"testing"

	"boothly/internal/domain/entity"
	domainerrors "boothly/internal/domain/errors"
	"boothly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioService_AddImage(t *testing.T) {
	t.Run("keeps given id", func(t *testing.T) {
		provider := createTestProvider(t)
		service := NewPortfolioService(provider, discardLogger())

		image, err := service.AddImage(context.Background(), &usecase.AddPortfolioImageInput{
			ID:    "p7",
			URL:   "https://example.com/p7.jpg",
			Title: "Koi",
		})

		require.NoError(t, err)
		assert.Equal(t, "p7", image.ID)

		images, err := service.ListImages(context.Background())
		require.NoError(t, err)
		require.Len(t, images, 7)
		assert.Equal(t, *image, images[6])
	})

	t.Run("generates id", func(t *testing.T) {
		service := NewPortfolioService(createTestProvider(t), discardLogger())

		image, err := service.AddImage(context.Background(), &usecase.AddPortfolioImageInput{URL: "https://example.com/new.jpg"})

		require.NoError(t, err)
		_, parseErr := uuid.Parse(image.ID)
		assert.NoError(t, parseErr)
	})
}

func TestPortfolioService_ReplaceImages(t *testing.T) {
	service := NewPortfolioService(createTestProvider(t), discardLogger())
	list := []entity.PortfolioImage{{ID: "only", URL: "https://example.com/only.jpg"}}

	_, err := service.AddImage(context.Background(), &usecase.AddPortfolioImageInput{ID: "p7"})
	require.NoError(t, err)

	images, err := service.ReplaceImages(context.Background(), list)

	require.NoError(t, err)
	assert.Equal(t, list, images)
}

func TestPortfolioService_RemoveImage(t *testing.T) {
	provider := createTestProvider(t)
	service := NewPortfolioService(provider, discardLogger())

	require.NoError(t, service.RemoveImage(context.Background(), "p3"))

	images := provider.MustStore().Portfolio()
	assert.Len(t, images, 5)
	for _, image := range images {
		assert.NotEqual(t, "p3", image.ID)
	}

	err := service.RemoveImage(context.Background(), "p3")
	assert.True(t, errors.Is(err, domainerrors.ErrPortfolioImageNotFound))
	assert.Len(t, provider.MustStore().Portfolio(), 5)
}
