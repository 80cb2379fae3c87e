package thumbnailing

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var supportedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/bmp",
	"image/tiff",
	"image/webp",
}

func GetSupportedContentTypes() []string {
	a := make([]string, len(supportedContentTypes))
	copy(a, supportedContentTypes)
	return a
}

// DetectContentType sniffs raw and reports whether it is a raster format the
// generator can decode.
func DetectContentType(raw []byte) (string, bool) {
	mime := mimetype.Detect(raw)
	for _, ct := range supportedContentTypes {
		if mime.Is(ct) {
			return ct, true
		}
	}
	return mime.String(), false
}
