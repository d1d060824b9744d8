// Package imaging genera las miniaturas WebP de las fotos de prendas.
// La imagen original se guarda siempre tal cual llegó; la miniatura es un
// extra y su ausencia no es un error de la subida.
package imaging

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const maxThumbSide = 512

// Thumbnail decodifica jpeg/png/webp y devuelve una miniatura WebP con el
// lado mayor limitado a 512px. Si el formato no se reconoce devuelve nil.
func Thumbnail(data []byte) []byte {
	img, err := decode(data)
	if err != nil {
		return nil
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	tw, th := fit(w, h, maxThumbSide)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 80}); err != nil {
		return nil
	}
	return buf.Bytes()
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}
	// image.Decode no conoce WebP; lo intentamos aparte porque varios
	// teléfonos suben la cámara ya convertida.
	if img, werr := webp.Decode(bytes.NewReader(data)); werr == nil {
		return img, nil
	}
	return nil, err
}

func fit(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		return max, h * max / w
	}
	return w * max / h, max
}
