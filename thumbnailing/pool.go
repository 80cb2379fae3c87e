package thumbnailing

import (
	"github.com/Jeffail/tunny"
	"github.com/littletreasures/hotel-media-repo/common/config"
)

type poolResult struct {
	thumbnail []byte
	err       error
}

// Pool bounds the number of thumbnails generated at the same time. Each
// submitted image is still generated on its own.
type Pool struct {
	pool *tunny.Pool
}

func NewPool(workers int, generator Thumbnailer) *Pool {
	return &Pool{
		pool: tunny.NewFunc(workers, func(i interface{}) interface{} {
			b, err := generator.Generate(i.([]byte))
			return &poolResult{thumbnail: b, err: err}
		}),
	}
}

func (p *Pool) Generate(raw []byte) ([]byte, error) {
	res := p.pool.Process(raw).(*poolResult)
	return res.thumbnail, res.err
}

func (p *Pool) Close() {
	p.pool.Close()
}

// NewFromConfig returns the generator described by conf, wrapped in a Pool
// when NumWorkers is positive. The returned func releases any workers.
func NewFromConfig(conf config.ThumbnailsConfig) (Thumbnailer, func()) {
	generator := NewGenerator(conf)
	if conf.NumWorkers <= 0 {
		return generator, func() {}
	}
	p := NewPool(conf.NumWorkers, generator)
	return p, p.Close
}
