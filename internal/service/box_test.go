package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"boxdrop/internal/apierr"
	"boxdrop/internal/auth"
	"boxdrop/internal/domain"
)

type mockBoxRepository struct {
	InsertFunc     func(ctx context.Context, box *domain.Box) error
	FindByCodeFunc func(ctx context.Context, code string) (*domain.Box, error)
}

func (m *mockBoxRepository) Insert(ctx context.Context, box *domain.Box) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, box)
	}
	return nil
}

func (m *mockBoxRepository) FindByCode(ctx context.Context, code string) (*domain.Box, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, domain.ErrBoxNotFound
}

func newTestBoxService(repo domain.BoxRepository) *BoxService {
	return NewBoxService(repo, auth.NewCodeIssuer(auth.NewSigner("test-secret")))
}

func TestBoxService_Create(t *testing.T) {
	validReq := func() *domain.CreateBoxReq {
		return &domain.CreateBoxReq{
			Data:        []domain.Message{{Type: domain.MessageText, Text: "hi"}},
			DeleteAfter: "ONE_DAY",
			Name:        "Untitled Box",
		}
	}

	t.Run("successful creation", func(t *testing.T) {
		var stored *domain.Box
		repo := &mockBoxRepository{
			InsertFunc: func(ctx context.Context, box *domain.Box) error {
				stored = box
				return nil
			},
		}
		svc := newTestBoxService(repo)
		fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return fixed }

		res, err := svc.Create(context.Background(), validReq())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if !regexp.MustCompile(`^[1-9][0-9]{5}$`).MatchString(res.Code) {
			t.Errorf("code %q is not a 6 digit number", res.Code)
		}
		if res.Token == "" {
			t.Error("expected non-empty token")
		}
		if stored == nil {
			t.Fatal("box was not persisted")
		}
		if stored.ID == "" {
			t.Error("expected a store-assigned id")
		}
		if stored.Code != res.Code {
			t.Errorf("stored code %q != returned code %q", stored.Code, res.Code)
		}
		if !stored.DeleteAfter.Equal(fixed.Add(24 * time.Hour)) {
			t.Errorf("deleteAfter = %v, want creation time + 24h", stored.DeleteAfter)
		}
		if !stored.CreatedAt.Equal(fixed) || !stored.UpdatedAt.Equal(fixed) {
			t.Errorf("createdAt/updatedAt = %v/%v, want %v", stored.CreatedAt, stored.UpdatedAt, fixed)
		}
		if !stored.DeleteAfter.After(stored.CreatedAt) {
			t.Error("deleteAfter must be strictly after createdAt")
		}
	})

	t.Run("unknown deleteAfter option", func(t *testing.T) {
		svc := newTestBoxService(&mockBoxRepository{})
		req := validReq()
		req.DeleteAfter = "FOREVER"
		_, err := svc.Create(context.Background(), req)
		if kind := kindOf(t, err); kind != apierr.KindInvalidFieldType {
			t.Errorf("expected INVALID_FIELD_TYPE, got %s", kind)
		}
	})

	t.Run("retries on code collision", func(t *testing.T) {
		attempts := 0
		repo := &mockBoxRepository{
			InsertFunc: func(ctx context.Context, box *domain.Box) error {
				attempts++
				if attempts == 1 {
					return domain.ErrCodeTaken
				}
				return nil
			},
		}
		svc := newTestBoxService(repo)
		if _, err := svc.Create(context.Background(), validReq()); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if attempts != 2 {
			t.Errorf("expected 2 insert attempts, got %d", attempts)
		}
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		attempts := 0
		repo := &mockBoxRepository{
			InsertFunc: func(ctx context.Context, box *domain.Box) error {
				attempts++
				return domain.ErrCodeTaken
			},
		}
		svc := newTestBoxService(repo)
		if _, err := svc.Create(context.Background(), validReq()); err == nil {
			t.Fatal("expected an error after exhausting attempts")
		}
		if attempts != maxCodeAttempts {
			t.Errorf("expected %d insert attempts, got %d", maxCodeAttempts, attempts)
		}
	})

	t.Run("store failure surfaces as plain error", func(t *testing.T) {
		repo := &mockBoxRepository{
			InsertFunc: func(ctx context.Context, box *domain.Box) error {
				return errors.New("write not acknowledged")
			},
		}
		svc := newTestBoxService(repo)
		_, err := svc.Create(context.Background(), validReq())
		if err == nil {
			t.Fatal("expected an error")
		}
		var apiErr *apierr.Error
		if errors.As(err, &apiErr) {
			t.Errorf("store failure should not be a taxonomy error, got %s", apiErr.Kind)
		}
	})
}

func TestBoxService_Get(t *testing.T) {
	stored := &domain.Box{
		ID:       "6650f9d2a1b2c3d4e5f60718",
		Code:     "654321",
		Data:     []domain.Message{{Type: domain.MessageText, Text: "hi"}},
		Password: "hunter2",
	}
	repo := &mockBoxRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Box, error) {
			if code == stored.Code {
				return stored, nil
			}
			return nil, domain.ErrBoxNotFound
		},
	}
	svc := newTestBoxService(repo)

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "000000", "")
		if kind := kindOf(t, err); kind != apierr.KindBoxNotExist {
			t.Errorf("expected BOX_NOT_EXIST, got %s", kind)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := svc.Get(context.Background(), stored.Code, "")
		if kind := kindOf(t, err); kind != apierr.KindPasswordRequired {
			t.Errorf("expected PASSWORD_REQUIRED, got %s", kind)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Get(context.Background(), stored.Code, "nope")
		if kind := kindOf(t, err); kind != apierr.KindInvalidPassword {
			t.Errorf("expected INVALID_PASSWORD, got %s", kind)
		}
	})

	t.Run("correct password returns the full record", func(t *testing.T) {
		box, err := svc.Get(context.Background(), stored.Code, "hunter2")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if box != stored {
			t.Error("expected the stored record back")
		}
	})

	t.Run("store failure surfaces as plain error", func(t *testing.T) {
		failing := &mockBoxRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*domain.Box, error) {
				return nil, errors.New("connection reset")
			},
		}
		_, err := newTestBoxService(failing).Get(context.Background(), "654321", "")
		if err == nil {
			t.Fatal("expected an error")
		}
		var apiErr *apierr.Error
		if errors.As(err, &apiErr) {
			t.Errorf("store failure should not be a taxonomy error, got %s", apiErr.Kind)
		}
	})
}
