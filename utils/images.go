package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadDir is where identity photos land; served statically under
// /uploads.
const UploadDir = "uploads"

// SaveBase64Image decodes a data-URL or raw base64 payload to disk and
// returns the public path. Only jpeg and png are accepted.
func SaveBase64Image(payload string) (string, error) {
	ext := ".jpg"
	if idx := strings.Index(payload, ";base64,"); idx != -1 {
		mime := payload[:idx]
		switch {
		case strings.Contains(mime, "png"):
			ext = ".png"
		case strings.Contains(mime, "jpeg"), strings.Contains(mime, "jpg"):
			ext = ".jpg"
		default:
			return "", fmt.Errorf("unsupported image type %q", mime)
		}
		payload = payload[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	path := filepath.Join(UploadDir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return "/" + UploadDir + "/" + name, nil
}
