package record

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/tracefield/traceanchor-backend/internal/model"
)

// DecodeImageDataURL decodes a base64 image data URL into raw bytes and the
// declared mime type. Only data:image/...;base64 payloads are accepted.
func DecodeImageDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, "", &model.ValidationError{Field: "imageData", Reason: "must be an image data url"}
	}

	marker := ";base64,"
	idx := strings.Index(dataURL, marker)
	if idx < 0 {
		return nil, "", &model.ValidationError{Field: "imageData", Reason: "must be base64-encoded"}
	}
	mime := dataURL[len("data:"):idx]

	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(marker):])
	if err != nil {
		return nil, "", &model.ValidationError{Field: "imageData", Reason: "invalid base64 payload"}
	}
	if len(raw) == 0 {
		return nil, "", &model.ValidationError{Field: "imageData", Reason: "empty image payload"}
	}
	return raw, mime, nil
}

// ImageFilename names an uploaded stage image so store listings stay
// readable. The extension follows the declared mime type.
func ImageFilename(productID, stageID string, timestampMilli int64, mime string) string {
	return fmt.Sprintf("%s_%s_%d.%s", productID, stageID, timestampMilli, imageExtension(mime))
}

func imageExtension(mime string) string {
	ext := strings.TrimPrefix(mime, "image/")
	if i := strings.IndexAny(ext, "+;"); i >= 0 {
		ext = ext[:i]
	}
	if ext == "jpeg" || ext == "" {
		ext = "jpg"
	}
	return ext
}
