package imgio

import (
	"encoding/binary"
	"errors"
	"fmt"
	bin "github.com/saylorsolutions/binmap"
	"io"
	"os"
)

const (
	rawExt = ".pxr"
	// "pixraw01" as a big-endian word.
	rawMagic uint64 = 0x7069787261773031
	// magic + layout + width + height
	rawHeaderSize = 8 + 1 + 8 + 8
)

var (
	ErrInvalidRawHeader = errors.New("invalid pxr header")
)

// rawHeader is the fixed-size preamble of a .pxr file. The pixel payload
// follows it verbatim, with its length implied by the dimensions and layout.
type rawHeader struct {
	magic  uint64
	layout uint8
	width  uint64
	height uint64
}

func (h *rawHeader) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.magic),
		bin.Byte(&h.layout),
		bin.Int(&h.width),
		bin.Int(&h.height),
	)
}

func saveRaw(img *Image, path string) error {
	if err := img.validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	hdr := rawHeader{
		magic:  rawMagic,
		layout: uint8(img.Layout),
		width:  uint64(img.Width),
		height: uint64(img.Height),
	}
	if err := hdr.mapper().Write(f, binary.BigEndian); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(img.Pix); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func loadRaw(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var hdr rawHeader
	if err := hdr.mapper().Read(f, binary.BigEndian); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRawHeader, err)
	}
	if hdr.magic != rawMagic {
		return nil, fmt.Errorf("%w: bad magic %#x", ErrInvalidRawHeader, hdr.magic)
	}
	layout := Layout(hdr.layout)
	ch := layout.Channels()
	if ch == 0 {
		return nil, fmt.Errorf("%w: unknown layout %d", ErrInvalidRawHeader, hdr.layout)
	}
	const maxDim = 1 << 31
	if hdr.width >= maxDim || hdr.height >= maxDim {
		return nil, fmt.Errorf("%w: dimensions %dx%d out of range", ErrInvalidRawHeader, hdr.width, hdr.height)
	}

	// The dimension bound keeps this product within uint64, so the payload
	// size can be checked against the file before anything is allocated. A
	// 25-byte header must not be able to demand an exabyte slice.
	payload := hdr.width * hdr.height * uint64(ch)
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if avail := info.Size() - rawHeaderSize; avail < 0 || payload > uint64(avail) {
		return nil, fmt.Errorf("%w: header implies %d payload bytes, file has %d", ErrInvalidRawHeader, payload, max(avail, 0))
	}

	img := &Image{
		Pix:    make([]byte, payload),
		Width:  int(hdr.width),
		Height: int(hdr.height),
		Layout: layout,
	}
	if _, err := io.ReadFull(f, img.Pix); err != nil {
		return nil, fmt.Errorf("%w: truncated pixel payload: %v", ErrInvalidRawHeader, err)
	}
	return img, nil
}
