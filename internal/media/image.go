package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
)

const maxImageWidth = 1280

// ProcessImage decodifica o upload (jpeg/png), reduz para no máximo
// maxImageWidth de largura e reencoda em webp.
func ProcessImage(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	img = scaleDown(img, maxImageWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func scaleDown(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	return dst
}
