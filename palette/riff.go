package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/image/riff"

	"colorflow/typed"
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

const palVersion = 0x0300

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// ReadFrom reads every palette stored in a RIFF PAL document.
func ReadFrom(r io.Reader) ([][]typed.SrgbU8, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readPalettes(rd, string(formType[:]))
}

func readPalettes(r *riff.Reader, ident string) ([][]typed.SrgbU8, error) {
	var res [][]typed.SrgbU8

	for {
		id, size, data, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return res, fmt.Errorf("could not read chunk %q#%d: %w", ident, len(res), err)
		}

		switch id {
		case riff.LIST:
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
		case dataType:
			pal, err := readPalette(data, fmt.Sprintf("%s%d", ident, len(res)))
			if err != nil {
				return res, err
			}
			res = append(res, pal)
		default:
			return res, fmt.Errorf("unsupported chunk type in %q#%d: %s", ident, len(res), string(id[:]))
		}
	}

	return res, nil
}

func readPalette(r io.Reader, ident string) ([]typed.SrgbU8, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("could not read header from chunk %s: %w", ident, err)
	}

	if ver := binary.LittleEndian.Uint16(buf); ver != palVersion {
		return nil, fmt.Errorf("unsupported palette version in chunk %s: %#x", ident, ver)
	}

	count := binary.LittleEndian.Uint16(buf[2:])
	res := make([]typed.SrgbU8, count)
	for i := range count {
		if _, err := io.ReadFull(r, buf); err != nil {
			return res[:i], fmt.Errorf("could not read color %d/%d from chunk %s: %w", i, count, ident, err)
		}
		res[i] = typed.SrgbU8{buf[0], buf[1], buf[2]}
	}

	return res, nil
}

// WriteTo stores pals as data chunks of a single RIFF PAL document and
// returns the number of colors written.
func WriteTo(w io.Writer, pals ...[]typed.SrgbU8) (int64, error) {
	n := 4
	for _, pal := range pals {
		if len(pal) > 0xFFFF {
			return 0, fmt.Errorf("palette has %d colors, at most %d fit in a chunk", len(pal), 0xFFFF)
		}
		n += 4 + 4 + 4 + len(pal)*4 // chunk id + chunk size + palVersion + palNumEntries + 4 bytes/color
	}

	if err := writeBytes(w, riffType[:]); err != nil {
		return 0, fmt.Errorf("could not write RIFF magic: %w", err)
	}

	if err := writeBytes(w, binary.LittleEndian.AppendUint32(nil, uint32(n))); err != nil {
		return 0, fmt.Errorf("could not write document size: %w", err)
	}

	if err := writeBytes(w, palType[:]); err != nil {
		return 0, fmt.Errorf("could not write content type: %w", err)
	}

	var count int64
	for i, pal := range pals {
		n, err := writePalette(w, pal)
		count += n
		if err != nil {
			return count, fmt.Errorf("could not write chunk %d: %w", i, err)
		}
	}

	return count, nil
}

func writePalette(w io.Writer, pal []typed.SrgbU8) (int64, error) {
	if err := writeBytes(w, dataType[:]); err != nil {
		return 0, fmt.Errorf("could not write type: %w", err)
	}

	n := 4 + len(pal)*4
	if err := writeBytes(w, binary.LittleEndian.AppendUint32(nil, uint32(n))); err != nil {
		return 0, fmt.Errorf("could not write chunk size: %w", err)
	}

	hdr := binary.LittleEndian.AppendUint16(nil, palVersion)
	hdr = binary.LittleEndian.AppendUint16(hdr, uint16(len(pal)))
	if err := writeBytes(w, hdr); err != nil {
		return 0, fmt.Errorf("could not write palette header: %w", err)
	}

	for i, c := range pal {
		if err := writeBytes(w, []byte{c[0], c[1], c[2], 0x00}); err != nil {
			return int64(i), fmt.Errorf("could not write color %d/%d: %w", i, len(pal), err)
		}
	}

	return int64(len(pal)), nil
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
