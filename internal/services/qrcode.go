package services

import (
	qrcode "github.com/skip2/go-qrcode"
)

// CodeEncoder renders text into a PNG QR code.
type CodeEncoder struct {
	Level qrcode.RecoveryLevel
	Size  int
}

func NewCodeEncoder() *CodeEncoder {
	return &CodeEncoder{Level: qrcode.Medium, Size: 290}
}

func (e *CodeEncoder) Encode(content string) ([]byte, error) {
	return qrcode.Encode(content, e.Level, e.Size)
}
