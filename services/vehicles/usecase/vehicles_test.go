package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/services/vehicles/mocks"
)

func newVehicleFixture(t *testing.T) (*VehicleUC, *mocks.MockVehicleRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockVehicleRepo(ctrl)
	return NewVehicleUC(repo), repo
}

func customer(id int) *models.Principal {
	return models.NewCustomerPrincipal(&models.Customer{ID: id, Email: "user@example.com"})
}

func shop(id int) *models.Principal {
	return models.NewShopPrincipal(&models.TireShop{ID: id, Email: "shop@example.com"})
}

func TestAddVehicle(t *testing.T) {
	uc, repo := newVehicleFixture(t)

	repo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.UserVehicle) error {
			assert.Equal(t, 1, v.CustomerID)
			v.ID = 5
			return nil
		})

	vehicle, err := uc.AddVehicle(context.Background(), customer(1), models.UserVehicle{
		Plate: "34 ABC 123",
		Brand: "Toyota",
		Model: "Corolla",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, vehicle.ID)
}

func TestAddVehicleRequiresPlate(t *testing.T) {
	uc, _ := newVehicleFixture(t)

	_, err := uc.AddVehicle(context.Background(), customer(1), models.UserVehicle{Brand: "Toyota"})
	require.Error(t, err)

	var vErr *apperrors.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestAddVehicleRejectsShops(t *testing.T) {
	uc, _ := newVehicleFixture(t)

	_, err := uc.AddVehicle(context.Background(), shop(2), models.UserVehicle{Plate: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestUpdateVehicleOfAnotherCustomer(t *testing.T) {
	uc, repo := newVehicleFixture(t)

	repo.EXPECT().GetVehicleByID(gomock.Any(), 5).
		Return(&models.UserVehicle{ID: 5, CustomerID: 2}, nil)

	_, err := uc.UpdateVehicle(context.Background(), customer(1), models.UserVehicle{ID: 5, Plate: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestUpdateVehicleCarriesStoredVersion(t *testing.T) {
	uc, repo := newVehicleFixture(t)

	repo.EXPECT().GetVehicleByID(gomock.Any(), 5).
		Return(&models.UserVehicle{ID: 5, CustomerID: 1, Version: 3}, nil)
	repo.EXPECT().UpdateVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.UserVehicle) error {
			assert.Equal(t, int64(3), v.Version)
			assert.Equal(t, 1, v.CustomerID)
			return nil
		})

	_, err := uc.UpdateVehicle(context.Background(), customer(1), models.UserVehicle{ID: 5, Plate: "x"})
	assert.NoError(t, err)
}

func TestRemoveVehicle(t *testing.T) {
	uc, repo := newVehicleFixture(t)

	repo.EXPECT().DeleteVehicle(gomock.Any(), 5, 1).Return(nil)
	assert.NoError(t, uc.RemoveVehicle(context.Background(), customer(1), 5))
}
