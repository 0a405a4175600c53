// Package cast reads metadata from asciicast session recordings.
package cast

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidCastFile is wrapped by every error returned from this package.
var ErrInvalidCastFile = errors.New("invalid cast file")

// maxHeaderLine is the longest header line ReadHeader accepts.
const maxHeaderLine = 1 << 20

// Header is the metadata record on the first line of a cast file.
type Header struct {
	Version       int
	Width         int
	Height        int
	Timestamp     int64
	Title         string
	IdleTimeLimit float64
}

// rawHeader mirrors the JSON header line. Geometry fields are pointers so
// that a missing field can be told apart from a zero one.
type rawHeader struct {
	Version       json.Number `json:"version"`
	Width         *int        `json:"width"`
	Height        *int        `json:"height"`
	Timestamp     float64     `json:"timestamp"`
	Title         string      `json:"title"`
	IdleTimeLimit float64     `json:"idle_time_limit"`
	Term          *rawTerm    `json:"term"`
}

// rawTerm holds geometry for headers that nest it under "term".
type rawTerm struct {
	Cols *int `json:"cols"`
	Rows *int `json:"rows"`
}

// ReadHeader opens the cast file at path and parses its first line.
// Nothing past the first line is read.
func ReadHeader(path string) (*Header, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidCastFile)
	}

	f, err := os.Open(path) //nolint:gosec // Cast path comes from user input, expected behavior
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidCastFile, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCastFile, err)
	}
	defer f.Close() //nolint:errcheck // read-only file close

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCastFile, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidCastFile, path)
	}

	hdr, err := ParseHeader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hdr, nil
}

// ParseHeader parses the first line of r as an asciicast header.
// Geometry is read from top-level width/height, or from term.cols/term.rows
// when those are absent. The version is informational and never rejected.
func ParseHeader(r io.Reader) (*Header, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxHeaderLine)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading header: %v", ErrInvalidCastFile, err)
		}
		return nil, fmt.Errorf("%w: file is empty", ErrInvalidCastFile)
	}

	var raw rawHeader
	if err := json.Unmarshal(scanner.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed header: %v", ErrInvalidCastFile, err)
	}

	hdr := &Header{
		Version:       parseVersion(raw.Version),
		Timestamp:     int64(raw.Timestamp),
		Title:         raw.Title,
		IdleTimeLimit: raw.IdleTimeLimit,
	}

	width, height := raw.Width, raw.Height
	if (width == nil || height == nil) && raw.Term != nil {
		width, height = raw.Term.Cols, raw.Term.Rows
	}

	if width == nil || height == nil {
		return nil, fmt.Errorf("%w: header is missing terminal width or height", ErrInvalidCastFile)
	}
	if *width <= 0 || *height <= 0 {
		return nil, fmt.Errorf("%w: header geometry must be positive, got %dx%d",
			ErrInvalidCastFile, *width, *height)
	}
	hdr.Width = *width
	hdr.Height = *height

	return hdr, nil
}

// parseVersion returns the header version, or 0 when it is absent.
func parseVersion(n json.Number) int {
	if n == "" {
		return 0
	}
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return int(f)
}
