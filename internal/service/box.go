package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"boxdrop/internal/apierr"
	"boxdrop/internal/auth"
	"boxdrop/internal/domain"
)

// maxCodeAttempts bounds re-issuance when a generated code is already
// present in the store.
const maxCodeAttempts = 5

// BoxService creates and retrieves boxes.
type BoxService struct {
	repo   domain.BoxRepository
	issuer *auth.CodeIssuer
	now    func() time.Time
}

func NewBoxService(repo domain.BoxRepository, issuer *auth.CodeIssuer) *BoxService {
	return &BoxService{repo: repo, issuer: issuer, now: time.Now}
}

// CreateResult is what the creator gets back: the public lookup code
// and a signed token proving the code was issued here.
type CreateResult struct {
	Code  string
	Token string
}

// Create persists a new box from an already validated request. Codes
// the store reports as taken are re-issued up to maxCodeAttempts times.
func (s *BoxService) Create(ctx context.Context, req *domain.CreateBoxReq) (*CreateResult, error) {
	ttl, ok := domain.DeleteAfterOptions[req.DeleteAfter]
	if !ok {
		return nil, apierr.InvalidFieldType("[deleteAfter] must be a valid option")
	}

	var lastErr error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, token, err := s.issuer.Issue()
		if err != nil {
			return nil, fmt.Errorf("issue code: %w", err)
		}

		now := s.now().UTC()
		box := &domain.Box{
			ID:          uuid.NewString(),
			Code:        code,
			Data:        req.Data,
			Password:    req.Password,
			Name:        req.Name,
			Description: req.Description,
			OwnerName:   req.OwnerName,
			OwnerEmail:  req.OwnerEmail,
			DeleteAfter: now.Add(ttl),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		err = s.repo.Insert(ctx, box)
		if err == nil {
			return &CreateResult{Code: code, Token: token}, nil
		}
		if !errors.Is(err, domain.ErrCodeTaken) {
			return nil, fmt.Errorf("store box: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no free code after %d attempts: %w", maxCodeAttempts, lastErr)
}

// Get returns the box stored under code, enforcing its password gate.
func (s *BoxService) Get(ctx context.Context, code, suppliedPassword string) (*domain.Box, error) {
	box, err := s.repo.FindByCode(ctx, code)
	if errors.Is(err, domain.ErrBoxNotFound) {
		return nil, apierr.BoxNotExist("Box does not exist")
	}
	if err != nil {
		return nil, fmt.Errorf("find box: %w", err)
	}
	if err := Authorize(box, suppliedPassword); err != nil {
		return nil, err
	}
	return box, nil
}
