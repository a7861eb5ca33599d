package service

import (
	"context"
	"fmt"
	"math"

	"github.com/wb-go/wbf/logger"

	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/service/ports"
)

type ProfileService struct {
	repo    ports.ProfileRepo
	drafter ports.ContractDrafter
	logger  logger.Logger
}

func NewProfileService(repo ports.ProfileRepo, drafter ports.ContractDrafter, logger logger.Logger) *ProfileService {
	return &ProfileService{
		repo:    repo,
		drafter: drafter,
		logger:  logger,
	}
}

func (s *ProfileService) Get(ctx context.Context) (*domain.DJProfile, error) {
	return s.repo.Get(ctx)
}

// Save replaces the profile whole. Only the DJ session reaches this
// through the router.
func (s *ProfileService) Save(ctx context.Context, p *domain.DJProfile) (*domain.DJProfile, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if p.HourlyRate < 0 || math.IsNaN(p.HourlyRate) || math.IsInf(p.HourlyRate, 0) {
		return nil, fmt.Errorf("%w: hourly rate must be a non-negative number", domain.ErrValidation)
	}
	if p.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}
	if p.SignatureURL != "" {
		if err := domain.ValidateSignatureDataURL(p.SignatureURL); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("profile saved", logger.String("dj", p.Name))

	return s.repo.Get(ctx)
}

// SetSignature stores the DJ's signature image on the profile. The sign
// operation rejects artist signatures until this has happened.
func (s *ProfileService) SetSignature(ctx context.Context, signatureURL string) (*domain.DJProfile, error) {
	if err := domain.ValidateSignatureDataURL(signatureURL); err != nil {
		return nil, err
	}

	profile, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	profile.SignatureURL = signatureURL

	if err = s.repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return profile, nil
}

// EnhanceBio rewords the given bio through the drafting collaborator.
// On any failure the original text comes back unchanged; the caller
// cannot tell a degraded call from a no-op rewrite except through logs.
func (s *ProfileService) EnhanceBio(ctx context.Context, bio string) string {
	if bio == "" {
		return bio
	}

	enhanced, err := s.drafter.EnhanceBio(ctx, bio)
	if err != nil || enhanced == "" {
		s.logger.Warn("bio enhancement failed, keeping original",
			logger.Any("error", err),
		)
		return bio
	}
	return enhanced
}
