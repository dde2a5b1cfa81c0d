// seehuhn.de/go/ink - freehand ink capture and math markup
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ink

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// DataURLPrefix starts the text form of an exported image.
const DataURLPrefix = "data:image/png;base64,"

// ExportedImage is a snapshot of the surface bitmap.
type ExportedImage struct {
	// PNG is the losslessly encoded bitmap.
	PNG []byte

	// Text is PNG as a base64 data URL, suitable for a JSON request body.
	Text string
}

// Export encodes the current bitmap as PNG. The bitmap is not modified.
// An empty surface gives a valid blank image; a surface that has never
// been configured gives a 1×1 transparent image.
func (s *Surface) Export() (ExportedImage, error) {
	var img image.Image = s.bitmap
	if s.bitmap.Bounds().Empty() {
		img = image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	buf := &bytes.Buffer{}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(buf, img); err != nil {
		return ExportedImage{}, fmt.Errorf("encoding surface: %w", err)
	}

	data := buf.Bytes()
	return ExportedImage{
		PNG:  data,
		Text: DataURLPrefix + base64.StdEncoding.EncodeToString(data),
	}, nil
}

var errNotDataURL = errors.New("not a PNG data URL")

// DecodeDataURL returns the PNG bytes of an exported image's text form.
func DecodeDataURL(text string) ([]byte, error) {
	payload, ok := strings.CutPrefix(text, DataURLPrefix)
	if !ok {
		return nil, errNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding data URL: %w", err)
	}
	return data, nil
}
