package palette

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/image/riff"

	"colorkit/colorspace"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

const palVersion = 3

// ReadRIFF reads every palette of a RIFF PAL document, including the ones
// nested in LIST chunks.
func ReadRIFF(r io.Reader) ([]Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readPalettes(rd, string(formType[:]))
}

func readPalettes(r *riff.Reader, ident string) ([]Palette, error) {
	var res []Palette

	for {
		id, size, data, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}

			return res, fmt.Errorf("could not read chunk %q#%d: %w", ident, len(res), err)
		}

		if id == riff.LIST {
			listType, list, lerr := riff.NewListReader(size, data)
			if lerr != nil {
				return res, fmt.Errorf("could not read list from chunk %q#%d: %w", ident, len(res), lerr)
			} else if listType != palType {
				return res, fmt.Errorf("chunk %q#%d unsupported type: %s", ident, len(res), string(listType[:]))
			}

			listRes, lerr := readPalettes(list, fmt.Sprintf("%s%d.%s", ident, len(res), listType[:]))
			res = append(res, listRes...)
			if lerr != nil {
				return res, lerr
			}
			continue
		} else if id != dataType {
			return res, fmt.Errorf("unsupported chunk type in %q#%d: %s", ident, len(res), id)
		}

		pal, err := readPalette(data, fmt.Sprintf("%s%d", ident, len(res)))
		if err != nil {
			return res, err
		}

		res = append(res, pal)
	}

	return res, nil
}

func readPalette(r io.Reader, ident string) (Palette, error) {
	buf := make([]byte, 2)

	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("could not read version from chunk %s: %w", ident, err)
	}

	ver := binary.BigEndian.Uint16(buf)
	if ver != palVersion {
		return nil, fmt.Errorf("unsupported palette version in chunk %s: %d", ident, ver)
	}

	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("could not read number of entries from chunk %s: %w", ident, err)
	}

	count := binary.LittleEndian.Uint16(buf)
	res := make(Palette, count)
	buf4 := make([]byte, 4)
	for i := range count {
		if _, err := io.ReadFull(r, buf4); err != nil {
			return res[:i], fmt.Errorf("could not read color %d/%d from chunk %s: %w", i, count, ident, err)
		}

		c, err := colorspace.NewRGB(int(buf4[0]), int(buf4[1]), int(buf4[2]))
		if err != nil {
			return res[:i], err
		}
		res[i] = c
	}

	return res, nil
}

// WriteRIFF writes pals as a single RIFF PAL document and returns the number
// of bytes written.
func WriteRIFF(w io.Writer, pals ...Palette) (int64, error) {
	n := 4
	for _, pal := range pals {
		if len(pal) > 0xffff {
			return 0, fmt.Errorf("palette has too many colors: %d", len(pal))
		}
		n += 4 + 4 + 4 + len(pal)*4 // chunk id + chunk size + palVersion + palNumEntries + 4 bytes/color
	}

	cw := &countingWriter{w: w}

	if err := writeBytes(cw, riffType[:]); err != nil {
		return cw.n, fmt.Errorf("could not write RIFF magic: %w", err)
	}

	if err := writeBytes(cw, binary.LittleEndian.AppendUint32(nil, uint32(n))); err != nil {
		return cw.n, fmt.Errorf("could not write document size: %w", err)
	}

	if err := writeBytes(cw, palType[:]); err != nil {
		return cw.n, fmt.Errorf("could not write content type: %w", err)
	}

	for i, pal := range pals {
		if err := writePalette(cw, pal); err != nil {
			return cw.n, fmt.Errorf("could not write chunk %d: %w", i, err)
		}
	}

	return cw.n, nil
}

func writePalette(w io.Writer, pal Palette) error {
	if err := writeBytes(w, dataType[:]); err != nil {
		return fmt.Errorf("could not write type: %w", err)
	}

	n := 4 + len(pal)*4
	if err := writeBytes(w, binary.LittleEndian.AppendUint32(nil, uint32(n))); err != nil {
		return fmt.Errorf("could not write chunk size: %w", err)
	}

	if err := writeBytes(w, binary.BigEndian.AppendUint16(nil, palVersion)); err != nil {
		return fmt.Errorf("could not write palette version: %w", err)
	}

	if err := writeBytes(w, binary.LittleEndian.AppendUint16(nil, uint16(len(pal)))); err != nil {
		return fmt.Errorf("could not write number of colors: %w", err)
	}

	for i, c := range pal {
		if err := writeBytes(w, []byte{byte(c.Red()), byte(c.Green()), byte(c.Blue()), 0x00}); err != nil {
			return fmt.Errorf("could not write color %d/%d: %w", i, len(pal), err)
		}
	}

	return nil
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}
