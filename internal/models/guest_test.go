package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmissionMessage(t *testing.T) {
	g := &Guest{Name: "Ana Pérez"}

	assert.Equal(t, "Acceso permitido: Ana Pérez", Admission{Status: AdmissionGranted, Guest: g}.Message())
	assert.Equal(t, "Ana Pérez ya ingresó.", Admission{Status: AdmissionAlreadyAdmitted, Guest: g}.Message())
	assert.Equal(t, "Código QR no válido", Admission{Status: AdmissionInvalid}.Message())
}

func TestGuestStatus(t *testing.T) {
	assert.Equal(t, "No ingresó", Guest{}.Status())
	assert.Equal(t, "Ingresó", Guest{Validated: true}.Status())
}
