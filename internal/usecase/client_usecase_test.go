package usecase

import (
	"context"
	"errors"
	"testing"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"
	mock_interfaces "logistica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Client{Name: "   "})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("sequence error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewClientUseCase(repo, seq)

		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceClient).Return(0, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.Client{Name: "Acme"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewClientUseCase(repo, seq)

		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceClient).Return(7, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.ClientID != 7 {
					t.Fatalf("unexpected ids: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Client{Name: " Acme "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Acme" {
			t.Fatalf("expected trimmed name, got %q", res.Name)
		}
	})
}

func TestClientUseCase_GetByClientID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().GetByClientID(gomock.Any(), 99).Return(entities.Client{}, nil)

		_, err := uc.GetByClientID(context.Background(), 99)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().DeleteByClientID(gomock.Any(), 99).Return(false, nil)

		if err := uc.Delete(context.Background(), 99); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}
