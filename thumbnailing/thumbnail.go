package thumbnailing

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/littletreasures/hotel-media-repo/common/config"
	"github.com/littletreasures/hotel-media-repo/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const Width = 200
const Height = 200
const ContentType = "image/jpeg"

// Thumbnailer turns raw image bytes into encoded thumbnail bytes.
type Thumbnailer interface {
	Generate(raw []byte) ([]byte, error)
}

type Generator struct {
	delay   time.Duration
	quality int
	filter  imaging.ResampleFilter
}

func NewGenerator(conf config.ThumbnailsConfig) *Generator {
	quality := conf.JpegQuality
	if quality <= 0 || quality > 100 {
		quality = 75
	}
	return &Generator{
		delay:   conf.GenerationDelay(),
		quality: quality,
		filter:  resampleFilter(conf.ResampleFilter),
	}
}

// Generate decodes raw, scales it to exactly Width x Height without keeping
// the aspect ratio, and encodes the result as JPEG. The configured delay is
// always served before returning a successful result.
func (g *Generator) Generate(raw []byte) ([]byte, error) {
	start := time.Now()

	contentType, ok := DetectContentType(raw)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %s", common.ErrImageDecode, contentType)
	}

	src, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrImageDecode, contentType, err)
	}

	thumb := imaging.Resize(src, Width, Height, g.filter)

	buf := &bytes.Buffer{}
	err = imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(g.quality))
	if err != nil {
		return nil, fmt.Errorf("error encoding thumbnail: %w", err)
	}

	if g.delay > 0 {
		time.Sleep(g.delay)
	}

	metrics.ThumbnailsGenerated.With(prometheus.Labels{
		"width":  strconv.Itoa(Width),
		"height": strconv.Itoa(Height),
		"origin": contentType,
	}).Inc()
	metrics.ThumbnailGenerationTime.Observe(time.Since(start).Seconds())

	return buf.Bytes(), nil
}

func resampleFilter(name string) imaging.ResampleFilter {
	switch strings.ToLower(name) {
	case "nearest":
		return imaging.NearestNeighbor
	case "linear":
		return imaging.Linear
	case "catmullrom":
		return imaging.CatmullRom
	case "lanczos":
		return imaging.Lanczos
	default:
		return imaging.Box
	}
}
