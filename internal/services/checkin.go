package services

import (
	"context"

	"fiesta/internal/metrics"
	"fiesta/internal/models"

	"go.uber.org/zap"
)

// CheckinService admits guests at the door.
type CheckinService struct {
	store GuestStore
	log   *zap.SugaredLogger
}

func NewCheckinService(store GuestStore, log *zap.SugaredLogger) *CheckinService {
	return &CheckinService{store: store, log: log}
}

// Validate admits the guest behind id on first presentation and reports a
// prior admission on later ones. Unknown or malformed ids are invalid.
func (s *CheckinService) Validate(ctx context.Context, id string) (models.Admission, error) {
	adm := models.Admission{Status: models.AdmissionInvalid}
	if validID(id) {
		var err error
		adm, err = s.store.Admit(ctx, id)
		if err != nil {
			s.log.Errorw("admission failed", "id", id, "err", err)
			return models.Admission{}, err
		}
	}

	metrics.AdmissionsTotal.WithLabelValues(adm.Status.String()).Inc()
	s.log.Infow("code scanned", "id", id, "result", adm.Status.String())
	return adm, nil
}
