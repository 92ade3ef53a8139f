// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package asset

import (
	"bytes"
	"errors"
	"image"
	"image/draw"

	// Decoders for the supported texture formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Image decodes the named resource as an image. PNG, JPEG and BMP
// are understood.
func (l *Loader) Image(name string) (image.Image, error) {
	data, err := l.Bytes(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.New("asset.Image(): " + err.Error())
	}
	return img, nil
}

// Pixels flattens an image into tightly packed RGBA bytes, bottom
// row first, the orientation texture uploads expect.
func Pixels(img image.Image) []uint8 {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	width, height := rgba.Rect.Dx(), rgba.Rect.Dy()
	pix := make([]uint8, 0, width*height*4)
	for y := height - 1; y >= 0; y-- {
		pix = append(pix, rgba.Pix[y*rgba.Stride:y*rgba.Stride+width*4]...)
	}
	return pix
}
