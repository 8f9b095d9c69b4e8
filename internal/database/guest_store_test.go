package database

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"fiesta/internal/models"
	"fiesta/internal/sentinel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type GuestStoreSuite struct {
	suite.Suite
	store *GuestStore
	ctx   context.Context
}

func (s *GuestStoreSuite) SetupTest() {
	db, err := Open(filepath.Join(s.T().TempDir(), "test.db"), zap.NewNop().Sugar())
	s.Require().NoError(err)
	s.store = NewGuestStore(db)
	s.ctx = context.Background()
}

func TestGuestStoreSuite(t *testing.T) {
	suite.Run(t, new(GuestStoreSuite))
}

func (s *GuestStoreSuite) newGuest(name, email string) *models.Guest {
	return &models.Guest{ID: uuid.NewString(), Name: name, Email: email}
}

func (s *GuestStoreSuite) TestCreate() {
	s.Run("stores a not yet validated guest", func() {
		g := s.newGuest("Ana Pérez", "ana@example.com")
		s.Require().NoError(s.store.Create(s.ctx, g, nil))

		found, err := s.store.FindByID(s.ctx, g.ID)
		s.Require().NoError(err)
		s.Equal("Ana Pérez", found.Name)
		s.False(found.Validated)
		s.Nil(found.ValidatedAt)
	})

	s.Run("rejects a duplicate email", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newGuest("Luis", "luis@example.com"), nil))

		err := s.store.Create(s.ctx, s.newGuest("Luis Otro", "luis@example.com"), nil)
		s.Require().ErrorIs(err, sentinel.ErrDuplicateEmail)

		guests, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		count := 0
		for _, g := range guests {
			if g.Email == "luis@example.com" {
				count++
			}
		}
		s.Equal(1, count)
	})

	s.Run("rolls back when the follow-up fails", func() {
		g := s.newGuest("Marta", "marta@example.com")
		boom := errors.New("disk full")

		err := s.store.Create(s.ctx, g, func() error { return boom })
		s.Require().ErrorIs(err, boom)

		_, err = s.store.FindByID(s.ctx, g.ID)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *GuestStoreSuite) TestList() {
	names := []string{"Uno", "Dos", "Tres"}
	for _, n := range names {
		s.Require().NoError(s.store.Create(s.ctx, s.newGuest(n, n+"@example.com"), nil))
	}

	guests, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(guests, 3)
	for i, g := range guests {
		s.Equal(names[i], g.Name)
	}
}

func (s *GuestStoreSuite) TestAdmit() {
	g := s.newGuest("Ana Pérez", "ana@example.com")
	s.Require().NoError(s.store.Create(s.ctx, g, nil))

	s.Run("unknown id is invalid", func() {
		adm, err := s.store.Admit(s.ctx, uuid.NewString())
		s.Require().NoError(err)
		s.Equal(models.AdmissionInvalid, adm.Status)
		s.Nil(adm.Guest)
	})

	s.Run("first scan grants access", func() {
		adm, err := s.store.Admit(s.ctx, g.ID)
		s.Require().NoError(err)
		s.Equal(models.AdmissionGranted, adm.Status)
		s.Equal("Ana Pérez", adm.Guest.Name)
		s.True(adm.Guest.Validated)
		s.NotNil(adm.Guest.ValidatedAt)
	})

	s.Run("second scan reports prior admission without changes", func() {
		before, err := s.store.FindByID(s.ctx, g.ID)
		s.Require().NoError(err)

		adm, err := s.store.Admit(s.ctx, g.ID)
		s.Require().NoError(err)
		s.Equal(models.AdmissionAlreadyAdmitted, adm.Status)
		s.Equal(before.Name, adm.Guest.Name)
		s.Equal(before.Email, adm.Guest.Email)
		s.True(before.ValidatedAt.Equal(*adm.Guest.ValidatedAt))
	})
}

func (s *GuestStoreSuite) TestAdmitConcurrentScansGrantOnce() {
	g := s.newGuest("Pedro", "pedro@example.com")
	s.Require().NoError(s.store.Create(s.ctx, g, nil))

	const scans = 8
	var (
		mu       sync.Mutex
		statuses []models.AdmissionStatus
		errs     []error
		wg       sync.WaitGroup
	)
	for range scans {
		wg.Add(1)
		go func() {
			defer wg.Done()
			adm, err := s.store.Admit(s.ctx, g.ID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			statuses = append(statuses, adm.Status)
		}()
	}
	wg.Wait()

	s.Require().Empty(errs)
	s.Require().Len(statuses, scans)
	granted := 0
	for _, st := range statuses {
		if st == models.AdmissionGranted {
			granted++
		} else {
			s.Equal(models.AdmissionAlreadyAdmitted, st)
		}
	}
	s.Equal(1, granted)

	found, err := s.store.FindByID(s.ctx, g.ID)
	s.Require().NoError(err)
	s.True(found.Validated)
}

func (s *GuestStoreSuite) TestDelete() {
	keep := s.newGuest("Keep", "keep@example.com")
	drop := s.newGuest("Drop", "drop@example.com")
	s.Require().NoError(s.store.Create(s.ctx, keep, nil))
	s.Require().NoError(s.store.Create(s.ctx, drop, nil))

	s.Run("removes exactly the matching record", func() {
		removed, err := s.store.Delete(s.ctx, drop.ID)
		s.Require().NoError(err)
		s.True(removed)

		guests, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(guests, 1)
		s.Equal(keep.ID, guests[0].ID)
	})

	s.Run("unknown id is a no-op", func() {
		removed, err := s.store.Delete(s.ctx, uuid.NewString())
		s.Require().NoError(err)
		s.False(removed)
	})

	s.Run("email can be reused after removal", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newGuest("Drop again", "drop@example.com"), nil))
	})
}
