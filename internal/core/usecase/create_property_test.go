package usecase

import (
	"context"
	"errors"
	"testing"

	"property-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validCreateInput() domain.PropertyCreateInput {
	return domain.PropertyCreateInput{
		Title:          "Cozy apartment",
		Description:    "Two rooms near the center",
		Price:          decimal.RequireFromString("125000.50"),
		AgentID:        uuid.New(),
		CityID:         uuid.New(),
		PropertyTypeID: uuid.New(),
		Status:         domain.StatusForSale,
		Address:        "Main street 1",
		Features:       []string{" Pool ", "", "Garage"},
		ImageURLs:      []string{"https://img.example/1.jpg", "  ", "https://img.example/2.jpg"},
	}
}

func TestCreateProperty_Succeeds(t *testing.T) {
	repo := newStubPropertyRepo()
	refs := allRefsExist()
	uc := NewCreatePropertyUseCase(repo, refs)

	view, err := uc.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, view.ID)
	require.Equal(t, "Cozy apartment", view.Title)
	require.True(t, view.Price.Equal(decimal.RequireFromString("125000.50")))
	require.Equal(t, domain.StatusForSale, view.Status)

	// Пустые элементы отброшены, порядок сохранен.
	require.Equal(t, []string{"Pool", "Garage"}, view.Features)
	require.Equal(t, []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}, view.ImageURLs)

	require.Equal(t, 1, repo.saveCalls)
	require.Equal(t, 1, refs.agentCalls)
	require.Equal(t, 1, refs.cityCalls)
	require.Equal(t, 1, refs.typeCalls)
}

func TestCreateProperty_NewPropertyIsNeverFeatured(t *testing.T) {
	repo := newStubPropertyRepo()
	uc := NewCreatePropertyUseCase(repo, allRefsExist())

	view, err := uc.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)
	require.False(t, view.IsFeatured)
}

func TestCreateProperty_FirstImageIsPrimary(t *testing.T) {
	repo := newStubPropertyRepo()
	uc := NewCreatePropertyUseCase(repo, allRefsExist())

	view, err := uc.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	saved, err := repo.FindByID(context.Background(), view.ID)
	require.NoError(t, err)
	require.Len(t, saved.Images, 2)
	require.True(t, saved.Images[0].IsPrimary)
	require.False(t, saved.Images[1].IsPrimary)
	require.Equal(t, 0, saved.Images[0].DisplayOrder)
	require.Equal(t, 1, saved.Images[1].DisplayOrder)
}

func TestCreateProperty_MissingAgentBlocksSave(t *testing.T) {
	repo := newStubPropertyRepo()
	refs := allRefsExist()
	refs.agentOK = false
	uc := NewCreatePropertyUseCase(repo, refs)

	_, err := uc.Execute(context.Background(), validCreateInput())
	require.Error(t, err)

	var refErr *domain.ReferenceNotFoundError
	require.True(t, errors.As(err, &refErr))
	require.Equal(t, "agent", refErr.Kind)
	require.Equal(t, 0, repo.saveCalls)
}

func TestCreateProperty_MissingCityBlocksSave(t *testing.T) {
	repo := newStubPropertyRepo()
	refs := allRefsExist()
	refs.cityOK = false
	uc := NewCreatePropertyUseCase(repo, refs)

	_, err := uc.Execute(context.Background(), validCreateInput())
	require.Error(t, err)

	var refErr *domain.ReferenceNotFoundError
	require.True(t, errors.As(err, &refErr))
	require.Equal(t, "city", refErr.Kind)
	require.Equal(t, 0, repo.saveCalls)
}

func TestCreateProperty_CheckerFailureAborts(t *testing.T) {
	repo := newStubPropertyRepo()
	refs := allRefsExist()
	refs.checkErr = errors.New("connection refused")
	uc := NewCreatePropertyUseCase(repo, refs)

	_, err := uc.Execute(context.Background(), validCreateInput())
	require.Error(t, err)
	require.Contains(t, err.Error(), "existence check failed")

	// Недоступность внешнего сервиса не считается отсутствием ссылки.
	var refErr *domain.ReferenceNotFoundError
	require.False(t, errors.As(err, &refErr))
	require.Equal(t, 0, repo.saveCalls)
}
