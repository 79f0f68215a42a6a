package qr

import (
	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the pixel width of generated QR images.
const DefaultSize = 256

// TicketLinkPNG renders an event's ticket link as a QR PNG for door
// posters and share cards.
func TicketLinkPNG(link string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(link, qrcode.Medium, size)
}
