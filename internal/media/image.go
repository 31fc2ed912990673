package media

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"time"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	maxPhotoWidth = 1600
	webpQuality   = 85
)

// ToWebP decodifica o upload (jpeg/png), limita a largura e reencoda
// em webp. Guardamos um formato só, o original é descartado.
func ToWebP(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img = shrink(img, maxPhotoWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}

func shrink(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// SalonPhotoKey segue o esquema de pastas por data:
// salon_photos/YYYY/MM/DD/<salonID>_<sufixo>.webp
func SalonPhotoKey(salonID uint, now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf(
		"salon_photos/%s/%d_%s.webp",
		now.Format("2006/01/02"),
		salonID,
		hex.EncodeToString(u[:3]),
	)
}
