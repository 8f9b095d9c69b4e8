package models

import (
	"time"
)

// Guest is one invited person and their admission state. Rows are hard
// deleted so a removed guest's email can be registered again.
type Guest struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	QRPath      string     `json:"qr_path"`
	Validated   bool       `gorm:"not null;default:false" json:"validated"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Status is the admin listing label for the admission flag.
func (g Guest) Status() string {
	if g.Validated {
		return "Ingresó"
	}
	return "No ingresó"
}

type AdmissionStatus int

const (
	AdmissionInvalid AdmissionStatus = iota
	AdmissionGranted
	AdmissionAlreadyAdmitted
)

func (s AdmissionStatus) String() string {
	switch s {
	case AdmissionGranted:
		return "granted"
	case AdmissionAlreadyAdmitted:
		return "already_admitted"
	default:
		return "invalid"
	}
}

// Admission is the outcome of presenting a code at the door.
type Admission struct {
	Status AdmissionStatus
	Guest  *Guest
}

// Message is the plain-text answer shown to the door checker.
func (a Admission) Message() string {
	switch a.Status {
	case AdmissionGranted:
		return "Acceso permitido: " + a.Guest.Name
	case AdmissionAlreadyAdmitted:
		return a.Guest.Name + " ya ingresó."
	default:
		return "Código QR no válido"
	}
}
