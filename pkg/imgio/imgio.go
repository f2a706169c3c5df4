package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif" // decode-only; normalized to RGBA on load
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrBadDimensions     = errors.New("pixel buffer does not match image dimensions")
)

// Layout tags the channel layout of a pixel buffer. The transform core treats
// it as opaque; it only matters when reassembling an image from bytes.
type Layout uint8

const (
	// LayoutGray is one byte per pixel.
	LayoutGray Layout = iota + 1
	// LayoutRGBA is four bytes per pixel, non-premultiplied.
	LayoutRGBA
)

// Channels reports bytes per pixel for the layout.
func (l Layout) Channels() int {
	switch l {
	case LayoutGray:
		return 1
	case LayoutRGBA:
		return 4
	default:
		return 0
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutGray:
		return "gray"
	case LayoutRGBA:
		return "rgba"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Image is a flattened raster: the raw pixel bytes and just enough shape
// information to rebuild a picture after the bytes have been transformed.
type Image struct {
	Pix    []byte
	Width  int
	Height int
	Layout Layout
}

func (img *Image) validate() error {
	ch := img.Layout.Channels()
	if ch == 0 {
		return fmt.Errorf("%w: layout %s", ErrUnsupportedFormat, img.Layout)
	}
	if img.Width < 0 || img.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, img.Width, img.Height)
	}
	if want := img.Width * img.Height * ch; len(img.Pix) != want {
		return fmt.Errorf("%w: have %d bytes, want %d for %dx%d %s",
			ErrBadDimensions, len(img.Pix), want, img.Width, img.Height, img.Layout)
	}
	return nil
}

// Load reads an image file into an Image. PNG, JPEG, and GIF files are
// decoded through the standard image registry; .pxr files are read verbatim.
// Grayscale sources keep LayoutGray, everything else becomes LayoutRGBA.
func Load(path string) (*Image, error) {
	if strings.EqualFold(filepath.Ext(path), rawExt) {
		return loadRaw(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return FromStdImage(decoded), nil
}

// FromStdImage flattens a decoded standard-library image.
func FromStdImage(decoded image.Image) *Image {
	bounds := decoded.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if gray, ok := decoded.(*image.Gray); ok {
		img := &Image{
			Pix:    make([]byte, w*h),
			Width:  w,
			Height: h,
			Layout: LayoutGray,
		}
		for y := 0; y < h; y++ {
			copy(img.Pix[y*w:(y+1)*w], gray.Pix[y*gray.Stride:y*gray.Stride+w])
		}
		return img
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), decoded, bounds.Min, draw.Src)
	img := &Image{
		Pix:    make([]byte, w*h*4),
		Width:  w,
		Height: h,
		Layout: LayoutRGBA,
	}
	for y := 0; y < h; y++ {
		copy(img.Pix[y*w*4:(y+1)*w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
	}
	return img
}

// ToStdImage rebuilds a standard-library image from the flat buffer.
func (img *Image) ToStdImage() (image.Image, error) {
	if err := img.validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, img.Width, img.Height)
	switch img.Layout {
	case LayoutGray:
		out := image.NewGray(rect)
		copy(out.Pix, img.Pix)
		return out, nil
	case LayoutRGBA:
		out := image.NewNRGBA(rect)
		copy(out.Pix, img.Pix)
		return out, nil
	default:
		return nil, fmt.Errorf("%w: layout %s", ErrUnsupportedFormat, img.Layout)
	}
}

// Save writes the image to path, picking the encoder from the extension.
// A path without an extension gets ".png" appended. Returns the path
// actually written.
func Save(img *Image, path string) (string, error) {
	if err := img.validate(); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = ".png"
		path += ext
	}
	if ext == rawExt {
		return path, saveRaw(img, path)
	}

	decoded, err := img.ToStdImage()
	if err != nil {
		return "", err
	}
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	switch ext {
	case ".png":
		err = png.Encode(f, decoded)
	default:
		err = jpeg.Encode(f, decoded, &jpeg.Options{Quality: 95})
	}
	if err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	return path, f.Close()
}
