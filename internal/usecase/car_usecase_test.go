package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"oficina_nova_brasil/internal/domain/entities"
	"oficina_nova_brasil/internal/usecase/interfaces"
	mock_interfaces "oficina_nova_brasil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCarUseCase_CreateCar(t *testing.T) {
	valid := entities.CarDraft{ClientID: "c1", Plate: "abc1234", Brand: "Fiat", Model: "Uno", Year: 2015}

	tests := []struct {
		name    string
		draft   entities.CarDraft
		setup   func(cars *mock_interfaces.MockICarRepository, clients *mock_interfaces.MockIClientRepository)
		wantErr error
	}{
		{
			name:    "missing client",
			draft:   entities.CarDraft{Plate: "abc1234", Brand: "Fiat", Model: "Uno", Year: 2015},
			wantErr: ErrValidation,
		},
		{
			name:    "zero year",
			draft:   entities.CarDraft{ClientID: "c1", Plate: "abc1234", Brand: "Fiat", Model: "Uno"},
			wantErr: ErrInvalidYear,
		},
		{
			name:  "unknown client",
			draft: valid,
			setup: func(_ *mock_interfaces.MockICarRepository, clients *mock_interfaces.MockIClientRepository) {
				clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{}, interfaces.ErrNotFound)
			},
			wantErr: ErrMissingReference,
		},
		{
			name:  "created",
			draft: entities.CarDraft{ClientID: " c1 ", Plate: " abc1234 ", Brand: "Fiat", Model: "Uno", Year: 2015},
			setup: func(cars *mock_interfaces.MockICarRepository, clients *mock_interfaces.MockIClientRepository) {
				clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
				cars.EXPECT().Create(gomock.Any(), valid).Return(entities.Car{ID: "v1", ClientID: "c1", Plate: "ABC1234"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			cars := mock_interfaces.NewMockICarRepository(ctrl)
			clients := mock_interfaces.NewMockIClientRepository(ctrl)
			if tt.setup != nil {
				tt.setup(cars, clients)
			}
			uc := NewCarUseCase(cars, clients, nil)

			got, err := uc.CreateCar(context.Background(), tt.draft)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != "v1" {
				t.Fatalf("unexpected car: %+v", got)
			}
		})
	}
}

func TestCarUseCase_UpdateCar(t *testing.T) {
	t.Run("owner change requires an existing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cars := mock_interfaces.NewMockICarRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewCarUseCase(cars, clients, nil)

		clients.EXPECT().GetByID(gomock.Any(), "c9").Return(entities.Client{}, fmt.Errorf("client %q: %w", "c9", interfaces.ErrNotFound))

		owner := " c9 "
		_, err := uc.UpdateCar(context.Background(), "v1", entities.CarPatch{ClientID: &owner})
		if !errors.Is(err, ErrMissingReference) {
			t.Fatalf("expected ErrMissingReference, got %v", err)
		}
	})

	t.Run("owner change to an existing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cars := mock_interfaces.NewMockICarRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewCarUseCase(cars, clients, nil)

		owner := "c2"
		clients.EXPECT().GetByID(gomock.Any(), "c2").Return(entities.Client{ID: "c2"}, nil)
		cars.EXPECT().Update(gomock.Any(), "v1", entities.CarPatch{ClientID: &owner}).Return(entities.Car{ID: "v1", ClientID: "c2"}, nil)

		got, err := uc.UpdateCar(context.Background(), "v1", entities.CarPatch{ClientID: &owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ClientID != "c2" {
			t.Fatalf("unexpected car: %+v", got)
		}
	})

	t.Run("client store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewCarUseCase(nil, clients, nil)

		boom := errors.New("db")
		clients.EXPECT().GetByID(gomock.Any(), "c2").Return(entities.Client{}, boom)

		owner := "c2"
		if _, err := uc.UpdateCar(context.Background(), "v1", entities.CarPatch{ClientID: &owner}); !errors.Is(err, boom) {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("invalid fields", func(t *testing.T) {
		uc := NewCarUseCase(nil, nil, nil)
		blank, year := "  ", -1
		patches := []entities.CarPatch{{Plate: &blank}, {ClientID: &blank}, {Year: &year}}
		for _, p := range patches {
			if _, err := uc.UpdateCar(context.Background(), "v1", p); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation for %+v, got %v", p, err)
			}
		}
	})

	t.Run("unknown car", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cars := mock_interfaces.NewMockICarRepository(ctrl)
		uc := NewCarUseCase(cars, nil, nil)

		color := "Azul"
		cars.EXPECT().Update(gomock.Any(), "x", gomock.Any()).Return(entities.Car{}, interfaces.ErrNotFound)
		if _, err := uc.UpdateCar(context.Background(), "x", entities.CarPatch{Color: &color}); !errors.Is(err, ErrCarNotFound) {
			t.Fatalf("expected ErrCarNotFound, got %v", err)
		}
	})
}

func TestCarUseCase_ListCars(t *testing.T) {
	fleet := []entities.Car{
		{ID: "v1", ClientID: "c1", Plate: "ABC1234", Brand: "Fiat", Model: "Uno", Year: 2015},
		{ID: "v2", ClientID: "c2", Plate: "XYZ9Z99", Brand: "VW", Model: "Gol", Year: 2010},
	}

	t.Run("by owner name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cars := mock_interfaces.NewMockICarRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewCarUseCase(cars, clients, nil)

		cars.EXPECT().List(gomock.Any()).Return(fleet, nil)
		clients.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "c1", Name: "Maria"}, {ID: "c2", Name: "José"}}, nil)

		got, err := uc.ListCars(context.Background(), CarFilter{Search: "josé"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "v2" {
			t.Fatalf("unexpected cars: %+v", got)
		}
	})

	t.Run("by client id skips the owner lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cars := mock_interfaces.NewMockICarRepository(ctrl)
		uc := NewCarUseCase(cars, nil, nil)

		cars.EXPECT().ListByClientID(gomock.Any(), "c1").Return(fleet[:1], nil)

		got, err := uc.ListCars(context.Background(), CarFilter{ClientID: " c1 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "v1" {
			t.Fatalf("unexpected cars: %+v", got)
		}
	})
}
