package media

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// completeStream walks the container of a sniffed image and reports whether
// the whole stream is present. PNG and JPEG are checked without decoding
// pixels; other formats fall back to a full decode.
func completeStream(data []byte, format string) bool {
	switch format {
	case "png":
		return completePNG(data)
	case "jpeg":
		return completeJPEG(data)
	default:
		_, _, err := image.Decode(bytes.NewReader(data))
		return err == nil
	}
}

// completePNG requires IHDR first, at least one IDAT, a valid CRC on every
// chunk and a terminating IEND.
func completePNG(data []byte) bool {
	if !bytes.HasPrefix(data, pngSignature) {
		return false
	}
	rest := data[len(pngSignature):]
	first, sawIDAT := true, false
	for len(rest) >= 12 {
		n := binary.BigEndian.Uint32(rest[:4])
		if uint64(n) > uint64(len(rest)-12) {
			return false
		}
		typ := string(rest[4:8])
		body := rest[8 : 8+n]
		sum := binary.BigEndian.Uint32(rest[8+n : 12+n])
		if crc32.ChecksumIEEE(rest[4:8+n]) != sum {
			return false
		}
		if first && typ != "IHDR" {
			return false
		}
		first = false

		switch typ {
		case "IDAT":
			sawIDAT = true
		case "IEND":
			return sawIDAT && len(body) == 0
		}
		rest = rest[12+n:]
	}
	return false
}

// completeJPEG walks the marker segments up to SOS and then scans the
// entropy-coded data for EOI. Progressive files carry several scans.
func completeJPEG(data []byte) bool {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return false
	}
	i, sawSOF := 2, false
	for i < len(data) {
		if data[i] != 0xFF {
			return false
		}
		for i < len(data) && data[i] == 0xFF {
			i++
		}
		if i >= len(data) {
			return false
		}
		marker := data[i]
		i++

		switch {
		case marker == 0xD9:
			return false
		case marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7):
			continue
		}
		if i+2 > len(data) {
			return false
		}
		n := int(binary.BigEndian.Uint16(data[i : i+2]))
		if n < 2 || i+n > len(data) {
			return false
		}
		if marker >= 0xC0 && marker <= 0xCF && marker != 0xC4 && marker != 0xC8 && marker != 0xCC {
			sawSOF = true
		}
		i += n
		if marker != 0xDA {
			continue
		}
		if !sawSOF {
			return false
		}

		// entropy-coded data ends at the first marker that is neither a
		// stuffed zero nor a restart marker
		for {
			j := bytes.IndexByte(data[i:], 0xFF)
			if j < 0 || i+j+1 >= len(data) {
				return false
			}
			i += j
			next := data[i+1]
			if next == 0x00 || next == 0xFF || (next >= 0xD0 && next <= 0xD7) {
				i += 2
				if next == 0xFF {
					i--
				}
				continue
			}
			if next == 0xD9 {
				return true
			}
			break
		}
	}
	return false
}
