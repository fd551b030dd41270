package assets

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
)

// Maximum dimensions for e-reader screens (reMarkable 2).
const (
	MaxWidth  = 1404
	MaxHeight = 1872
)

// jpegQuality balances size against visible artifacts on e-ink displays.
const jpegQuality = 85

// Optimize downscales an image that exceeds the e-reader bounds and
// re-encodes it. Images already within bounds are returned byte-identical,
// which makes the operation idempotent: a second run on its own output is a
// no-op. Formats without an encoder (svg, webp, bmp) pass through untouched.
func Optimize(data []byte, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		return data, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return data, nil
	}
	if cfg.Width <= MaxWidth && cfg.Height <= MaxHeight {
		return data, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, nil
	}

	w, h := fitWithin(cfg.Width, cfg.Height, MaxWidth, MaxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		err = gif.Encode(&buf, dst, nil)
	default:
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return data, nil
	}
	return buf.Bytes(), nil
}

// fitWithin scales (w, h) down proportionally so both fit the bounds.
// Inputs already within bounds are returned unchanged.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
