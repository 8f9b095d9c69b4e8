package services

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"fiesta/internal/sentinel"

	"github.com/spf13/afero"
)

// Artifacts stores the QR image and invitation document of each guest,
// named by the guest identifier.
type Artifacts struct {
	fs     afero.Fs
	qrDir  string
	pdfDir string
}

func NewArtifacts(fsys afero.Fs, qrDir, pdfDir string) (*Artifacts, error) {
	for _, dir := range []string{qrDir, pdfDir} {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return &Artifacts{fs: fsys, qrDir: qrDir, pdfDir: pdfDir}, nil
}

func (a *Artifacts) QRPath(id string) string {
	return filepath.Join(a.qrDir, id+".png")
}

func (a *Artifacts) PDFPath(id string) string {
	return filepath.Join(a.pdfDir, id+".pdf")
}

func (a *Artifacts) WriteQR(id string, png []byte) error {
	return afero.WriteFile(a.fs, a.QRPath(id), png, 0o644)
}

func (a *Artifacts) WritePDF(id string, doc []byte) error {
	return afero.WriteFile(a.fs, a.PDFPath(id), doc, 0o644)
}

func (a *Artifacts) ReadPDF(id string) ([]byte, error) {
	data, err := afero.ReadFile(a.fs, a.PDFPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("invitation %s: %w", id, sentinel.ErrNotFound)
	}
	return data, err
}

// Remove deletes both files of a guest. Files that are already gone are
// skipped.
func (a *Artifacts) Remove(id string) error {
	var errs []error
	for _, p := range []string{a.QRPath(id), a.PDFPath(id)} {
		if err := a.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
