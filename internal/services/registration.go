package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"fiesta/internal/config"
	"fiesta/internal/metrics"
	"fiesta/internal/models"
	"fiesta/internal/sentinel"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// RegistrationRequest is the guest form submission.
type RegistrationRequest struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required"`
}

// Invitation is a freshly registered guest and their printable document.
type Invitation struct {
	Guest    *models.Guest
	Filename string
	PDF      []byte
}

type RegistrationService struct {
	cfg       *config.Config
	store     GuestStore
	artifacts *Artifacts
	encoder   *CodeEncoder
	composer  *InvitationComposer
	validate  *validator.Validate
	log       *zap.SugaredLogger

	NewID IDGenerator
}

func NewRegistrationService(cfg *config.Config, store GuestStore, artifacts *Artifacts, log *zap.SugaredLogger) *RegistrationService {
	return &RegistrationService{
		cfg:       cfg,
		store:     store,
		artifacts: artifacts,
		encoder:   NewCodeEncoder(),
		composer:  NewInvitationComposer(cfg.EventTitle),
		validate:  validator.New(),
		log:       log,
		NewID:     NewID,
	}
}

// Register stores a new guest and returns their invitation. The record,
// QR image and PDF are written together: if any of them fails nothing is
// kept. A known email yields sentinel.ErrDuplicateEmail.
func (s *RegistrationService) Register(ctx context.Context, req RegistrationRequest) (*Invitation, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validate.Struct(req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: %v", sentinel.ErrInvalidInput, err)
	}

	id := s.NewID()
	g := &models.Guest{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		QRPath: s.artifacts.QRPath(id),
	}

	var doc bytes.Buffer
	err := s.store.Create(ctx, g, func() error {
		png, err := s.encoder.Encode(s.cfg.ValidationURL(id))
		if err != nil {
			return fmt.Errorf("encode qr: %w", err)
		}
		if err := s.artifacts.WriteQR(id, png); err != nil {
			return fmt.Errorf("write qr: %w", err)
		}
		if err := s.composer.Compose(&doc, g.Name, png); err != nil {
			return fmt.Errorf("compose invitation: %w", err)
		}
		if err := s.artifacts.WritePDF(id, doc.Bytes()); err != nil {
			return fmt.Errorf("write invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrDuplicateEmail) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			s.log.Infow("registration rejected, email in use", "email", g.Email)
			return nil, err
		}
		if rmErr := s.artifacts.Remove(id); rmErr != nil {
			s.log.Warnw("artifact cleanup failed", "id", id, "err", rmErr)
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		s.log.Errorw("registration failed", "id", id, "email", g.Email, "err", err)
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.log.Infow("guest registered", "id", id, "name", g.Name, "email", g.Email)
	return &Invitation{Guest: g, Filename: id + ".pdf", PDF: doc.Bytes()}, nil
}
