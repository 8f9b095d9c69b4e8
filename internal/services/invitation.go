package services

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	qrImageName = "qr"
	fontFamily  = "GoRegular"
	textWidth   = 190 // A4 width minus 10mm margins
)

// InvitationComposer lays out the one-page printable invitation.
type InvitationComposer struct {
	Title string
}

func NewInvitationComposer(title string) *InvitationComposer {
	return &InvitationComposer{Title: title}
}

// Compose writes an A4 PDF with the title, the guest name, the entry
// instruction and the QR image below the text. Long lines wrap.
func (c *InvitationComposer) Compose(w io.Writer, name string, qrPNG []byte) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)

	pdf.AddPage()
	pdf.SetFont(fontFamily, "", 16)
	pdf.MultiCell(textWidth, 10, printable(c.Title), "", "C", false)
	pdf.Ln(10)

	pdf.SetFont(fontFamily, "", 12)
	pdf.MultiCell(textWidth, 10, "Nombre: "+printable(name), "", "L", false)
	pdf.MultiCell(textWidth, 10, "Presenta este código en la entrada:", "", "L", false)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImageName, 60, pdf.GetY()+5, 90, 0, false, opts, 0, "")

	return pdf.Output(w)
}

// printable keeps the basic multilingual plane; the embedded font tables
// cannot address code points above it (emoji and the like).
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return '?'
		}
		return r
	}, s)
}
