package framing

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

const bitmapFileHeaderSize = 14

var ErrInvalidBitmap = errors.New("invalid bitmap")

//Bitmap splits a BMP file into the headers (file header, info header and
// palette) and the pixel data. Only the pixels go over the channel.
type Bitmap struct {
	Header []byte
	Pixels []byte
}

func ParseBitmap(data []byte) (*Bitmap, error) {
	if len(data) < bitmapFileHeaderSize {
		return nil, fmt.Errorf("framing: %v bytes is shorter than the bitmap file header: %w", len(data), ErrInvalidBitmap)
	}
	if data[0] != 'B' || data[1] != 'M' {
		return nil, fmt.Errorf("framing: missing BM signature: %w", ErrInvalidBitmap)
	}

	offset := binary.LittleEndian.Uint32(data[10:14])
	if offset < bitmapFileHeaderSize || uint64(len(data)) < uint64(offset) {
		return nil, fmt.Errorf("framing: pixel offset %v outside of %v bytes: %w", offset, len(data), ErrInvalidBitmap)
	}

	return &Bitmap{
		Header: data[:offset],
		Pixels: data[offset:],
	}, nil
}

func (b *Bitmap) Bytes() []byte {
	return append(slices.Clone(b.Header), b.Pixels...)
}

func (t *Transmitter) sendBitmap(ctx context.Context, data []byte, send func(context.Context, []byte) ([]byte, Report, error)) ([]byte, Report, error) {
	bmp, err := ParseBitmap(data)
	if err != nil {
		return nil, Report{}, err
	}

	pixels, r, err := send(ctx, bmp.Pixels)
	if err != nil {
		return nil, r, err
	}

	result := &Bitmap{Header: bmp.Header, Pixels: pixels}
	return result.Bytes(), r, nil
}

// SendBitmap sends the pixel data of a BMP file through the code, the headers are kept as is.
func (t *Transmitter) SendBitmap(ctx context.Context, data []byte) ([]byte, Report, error) {
	return t.sendBitmap(ctx, data, t.SendBytes)
}

func (t *Transmitter) SendBitmapUncoded(ctx context.Context, data []byte) ([]byte, Report, error) {
	return t.sendBitmap(ctx, data, t.SendBytesUncoded)
}
