package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/logger"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/services/appointments/mocks"
)

type appointmentFixture struct {
	uc     *AppointmentUC
	repo   *mocks.MockAppointmentRepo
	shops  *mocks.MockShopDirectory
	events *mocks.MockEventGW
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAppointmentRepo(ctrl)
	shops := mocks.NewMockShopDirectory(ctrl)
	events := mocks.NewMockEventGW(ctrl)
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"}, "test")
	require.NoError(t, err)

	return &appointmentFixture{
		uc:     NewAppointmentUC(repo, shops, events, log),
		repo:   repo,
		shops:  shops,
		events: events,
	}
}

func customer(id int) *models.Principal {
	return models.NewCustomerPrincipal(&models.Customer{ID: id, Email: "user@example.com"})
}

func shop(id int) *models.Principal {
	return models.NewShopPrincipal(&models.TireShop{ID: id, Email: "shop@example.com"})
}

// nextDayAt returns tomorrow at the given wall-clock time.
func nextDayAt(hour, minute int) time.Time {
	t := time.Now().AddDate(0, 0, 1)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

func TestBookAppointment(t *testing.T) {
	f := newAppointmentFixture(t)

	f.shops.EXPECT().GetShopByID(gomock.Any(), 2).Return(&models.TireShop{
		ID: 2, OpeningHour: "08:00", ClosingHour: "18:00",
	}, nil)
	f.repo.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Appointment) error {
			assert.Equal(t, models.AppointmentStatusRequested, a.Status)
			assert.Equal(t, 1, a.CustomerID)
			a.ID = 10
			return nil
		})
	f.events.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	appointment, err := f.uc.BookAppointment(context.Background(), customer(1), models.CreateAppointmentInput{
		ShopID:      2,
		ScheduledAt: nextDayAt(10, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, appointment.ID)
}

func TestBookAppointmentOutsideOperatingHours(t *testing.T) {
	f := newAppointmentFixture(t)

	f.shops.EXPECT().GetShopByID(gomock.Any(), 2).Return(&models.TireShop{
		ID: 2, OpeningHour: "08:00", ClosingHour: "18:00",
	}, nil).Times(2)

	for _, at := range []time.Time{nextDayAt(7, 30), nextDayAt(18, 0)} {
		_, err := f.uc.BookAppointment(context.Background(), customer(1), models.CreateAppointmentInput{
			ShopID:      2,
			ScheduledAt: at,
		})
		require.Error(t, err)

		var vErr *apperrors.ValidationError
		assert.True(t, errors.As(err, &vErr), "slot %v", at)
	}
}

func TestBookAppointmentShopWithoutHours(t *testing.T) {
	f := newAppointmentFixture(t)

	f.shops.EXPECT().GetShopByID(gomock.Any(), 2).Return(&models.TireShop{ID: 2}, nil)
	f.repo.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Appointment) error {
			a.ID = 1
			return nil
		})
	f.events.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.BookAppointment(context.Background(), customer(1), models.CreateAppointmentInput{
		ShopID:      2,
		ScheduledAt: nextDayAt(3, 0),
	})
	assert.NoError(t, err, "shops without stored hours accept any slot")
}

func TestBookAppointmentInThePast(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.uc.BookAppointment(context.Background(), customer(1), models.CreateAppointmentInput{
		ShopID:      2,
		ScheduledAt: time.Now().Add(-time.Hour),
	})
	require.Error(t, err)

	var vErr *apperrors.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestBookAppointmentRejectsShops(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.uc.BookAppointment(context.Background(), shop(2), models.CreateAppointmentInput{
		ShopID:      2,
		ScheduledAt: nextDayAt(10, 0),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestConfirmAppointment(t *testing.T) {
	f := newAppointmentFixture(t)

	requested := &models.Appointment{
		ID: 10, CustomerID: 1, ShopID: 2,
		Status: models.AppointmentStatusRequested, Version: 1,
	}
	confirmed := &models.Appointment{
		ID: 10, CustomerID: 1, ShopID: 2,
		Status: models.AppointmentStatusConfirmed, Version: 2,
	}

	gomock.InOrder(
		f.repo.EXPECT().GetAppointmentByID(gomock.Any(), 10).Return(requested, nil),
		f.repo.EXPECT().UpdateStatus(gomock.Any(), 10, models.AppointmentStatusConfirmed, int64(1)).Return(nil),
		f.repo.EXPECT().GetAppointmentByID(gomock.Any(), 10).Return(confirmed, nil),
	)
	f.events.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.uc.ConfirmAppointment(context.Background(), shop(2), 10)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusConfirmed, result.Status)
}

func TestConfirmAppointmentByWrongShop(t *testing.T) {
	f := newAppointmentFixture(t)

	f.repo.EXPECT().GetAppointmentByID(gomock.Any(), 10).Return(&models.Appointment{
		ID: 10, CustomerID: 1, ShopID: 2, Status: models.AppointmentStatusRequested,
	}, nil)

	_, err := f.uc.ConfirmAppointment(context.Background(), shop(3), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestConfirmAppointmentByCustomer(t *testing.T) {
	f := newAppointmentFixture(t)

	f.repo.EXPECT().GetAppointmentByID(gomock.Any(), 10).Return(&models.Appointment{
		ID: 10, CustomerID: 1, ShopID: 2, Status: models.AppointmentStatusRequested,
	}, nil)

	_, err := f.uc.ConfirmAppointment(context.Background(), customer(1), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestCancelAppointmentByEitherParty(t *testing.T) {
	f := newAppointmentFixture(t)

	for _, principal := range []*models.Principal{customer(1), shop(2)} {
		requested := &models.Appointment{
			ID: 10, CustomerID: 1, ShopID: 2,
			Status: models.AppointmentStatusRequested, Version: 1,
		}
		cancelled := &models.Appointment{
			ID: 10, CustomerID: 1, ShopID: 2,
			Status: models.AppointmentStatusCancelled, Version: 2,
		}

		gomock.InOrder(
			f.repo.EXPECT().GetAppointmentByID(gomock.Any(), 10).Return(requested, nil),
			f.repo.EXPECT().UpdateStatus(gomock.Any(), 10, models.AppointmentStatusCancelled, int64(1)).Return(nil),
			f.repo.EXPECT().GetAppointmentByID(gomock.Any(), 10).Return(cancelled, nil),
		)
		f.events.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.uc.CancelAppointment(context.Background(), principal, 10)
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusCancelled, result.Status)
	}
}

func TestCancelAppointmentAlreadyCancelled(t *testing.T) {
	f := newAppointmentFixture(t)

	f.repo.EXPECT().GetAppointmentByID(gomock.Any(), 10).Return(&models.Appointment{
		ID: 10, CustomerID: 1, ShopID: 2, Status: models.AppointmentStatusCancelled,
	}, nil)

	_, err := f.uc.CancelAppointment(context.Background(), customer(1), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
}

func TestGetAppointmentThirdParty(t *testing.T) {
	f := newAppointmentFixture(t)

	f.repo.EXPECT().GetAppointmentByID(gomock.Any(), 10).Return(&models.Appointment{
		ID: 10, CustomerID: 1, ShopID: 2, Status: models.AppointmentStatusRequested,
	}, nil)

	_, err := f.uc.GetAppointment(context.Background(), customer(9), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}
