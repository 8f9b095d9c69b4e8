package services

import (
	"context"
	"fmt"

	"fiesta/internal/metrics"
	"fiesta/internal/models"
	"fiesta/internal/sentinel"

	"go.uber.org/zap"
)

// GuestAdminService backs the admin panel listing, removal and document
// re-download.
type GuestAdminService struct {
	store     GuestStore
	artifacts *Artifacts
	log       *zap.SugaredLogger
}

func NewGuestAdminService(store GuestStore, artifacts *Artifacts, log *zap.SugaredLogger) *GuestAdminService {
	return &GuestAdminService{store: store, artifacts: artifacts, log: log}
}

func (s *GuestAdminService) List(ctx context.Context) ([]models.Guest, error) {
	return s.store.List(ctx)
}

// Remove deletes the guest and their QR image and invitation. Removing an
// unknown id succeeds without doing anything.
func (s *GuestAdminService) Remove(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}

	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	// the row is gone either way; leftover files are only logged
	if err := s.artifacts.Remove(id); err != nil {
		s.log.Warnw("artifact cleanup failed", "id", id, "err", err)
	}

	if removed {
		metrics.GuestsDeletedTotal.Inc()
		s.log.Infow("guest removed", "id", id)
	}
	return nil
}

// Invitation returns the stored PDF of a registered guest.
func (s *GuestAdminService) Invitation(ctx context.Context, id string) ([]byte, error) {
	if !validID(id) {
		return nil, fmt.Errorf("invitation %q: %w", id, sentinel.ErrNotFound)
	}
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.artifacts.ReadPDF(id)
}
