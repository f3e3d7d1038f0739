// Package render — background image loading.
//
// A background reference is either a local file path or an http(s) URL.
// The bytes are sniffed with image.DecodeConfig (PNG and JPEG are
// registered) both to reject non-images early and to pick the right MIME
// type for the data URI. Every failure here is recoverable by the caller:
// Render degrades to a backdrop-less drawing.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	// Register the raster formats a map snippet realistically arrives in.
	_ "image/jpeg"
	_ "image/png"
)

// maxBackgroundBytes caps how much image data is pulled from a URL.
const maxBackgroundBytes = 32 << 20 // 32 MiB

// httpTimeout bounds the background fetch; a stuck map-tile server must not
// stall the whole rendering run.
const httpTimeout = 15 * time.Second

// backgroundLoader converts a background reference into an embeddable data
// URI. Split out as a type so tests can substitute deterministic loaders.
type backgroundLoader func(ref string) (string, error)

// loadBackground reads ref (file path or http(s) URL) and returns a
// data:image/...;base64 URI suitable for an SVG <image> href.
func loadBackground(ref string) (string, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		data, err = fetchURL(ref)
	} else {
		data, err = os.ReadFile(ref)
	}
	if err != nil {
		return "", fmt.Errorf("render: load background: %w", err)
	}

	// Sniff the format; this also rejects arbitrary non-image bytes.
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("render: background is not a supported image: %w", err)
	}

	return fmt.Sprintf("data:image/%s;base64,%s", format, base64.StdEncoding.EncodeToString(data)), nil
}

// fetchURL downloads url with a bounded client and size cap.
func fetchURL(url string) ([]byte, error) {
	client := &http.Client{Timeout: httpTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBackgroundBytes))
}
