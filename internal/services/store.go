package services

import (
	"context"

	"fiesta/internal/models"

	"github.com/google/uuid"
)

// GuestStore is the storage the workflows run against.
type GuestStore interface {
	Create(ctx context.Context, g *models.Guest, then func() error) error
	FindByID(ctx context.Context, id string) (*models.Guest, error)
	List(ctx context.Context) ([]models.Guest, error)
	Admit(ctx context.Context, id string) (models.Admission, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IDGenerator returns a fresh opaque guest identifier.
type IDGenerator func() string

// NewID is the default generator: random (v4) UUIDs.
func NewID() string {
	return uuid.NewString()
}

// validID rejects anything that is not a canonical identifier, which also
// keeps request input out of artifact file paths.
func validID(id string) bool {
	u, err := uuid.Parse(id)
	return err == nil && u.String() == id
}
