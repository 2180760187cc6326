package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// supportedEncodings in order of preference
var supportedEncodings = []string{"br", "zstd", "gzip"}

// negotiateEncoding picks the preferred encoding the client accepts, or "" for identity
func negotiateEncoding(acceptEncoding string) string {
	accepted := make(map[string]bool)
	for _, part := range strings.Split(acceptEncoding, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if strings.ReplaceAll(strings.TrimSpace(params), " ", "") == "q=0" {
			continue
		}
		accepted[name] = true
	}

	for _, enc := range supportedEncodings {
		if accepted[enc] || accepted["*"] {
			return enc
		}
	}
	return ""
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// newEncoder wraps w in the compressor for encoding
func newEncoder(w io.Writer, encoding string) (io.WriteCloser, error) {
	switch encoding {
	case "br":
		return brotli.NewWriter(w), nil
	case "zstd":
		zstdWriter, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zstdWriter, nil
	case "gzip":
		return gzip.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

// writeEncoded writes body compressed according to the request's Accept-Encoding
func writeEncoded(w http.ResponseWriter, r *http.Request, contentType string, body []byte) error {
	encoding := negotiateEncoding(r.Header.Get("Accept-Encoding"))

	w.Header().Set("Content-Type", contentType)
	w.Header().Add("Vary", "Accept-Encoding")
	if encoding != "" {
		w.Header().Set("Content-Encoding", encoding)
	}

	encoder, err := newEncoder(w, encoding)
	if err != nil {
		return err
	}

	if _, err := encoder.Write(body); err != nil {
		encoder.Close()
		return fmt.Errorf("failed to write response: %w", err)
	}

	return encoder.Close()
}
