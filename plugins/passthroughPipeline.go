package plugins

import (
	"math"

	"github.com/tradegym/marketsim/api"
	"github.com/tradegym/marketsim/model"
)

// passthroughPipeline is the trivial feature pipeline: it flattens the window to the raw
// prices, quantized to the configured dtype. It exists so callers exercising the pipeline
// seam have a default stage to compose with.
type passthroughPipeline struct {
	dtype string
}

var _ api.FeaturePipeline = &passthroughPipeline{}

// MakePassthroughPipeline is a factory method. dtype must be one of the recognized dtype
// values of the configuration surface.
func MakePassthroughPipeline(dtype string) (api.FeaturePipeline, error) {
	switch dtype {
	case api.DTypeFloat16, api.DTypeFloat32, api.DTypeFloat64:
		return &passthroughPipeline{dtype: dtype}, nil
	}
	return nil, api.MakeErrConfiguration("unrecognized dtype '%s' for passthrough pipeline", dtype)
}

// Transform impl.
func (p *passthroughPipeline) Transform(window []model.PriceRow) ([]float64, error) {
	features := make([]float64, len(window))
	for i, row := range window {
		features[i] = quantize(row.Price, p.dtype)
	}
	return features, nil
}

// quantize reduces a value to the mantissa precision of the target dtype. float16 keeps the
// float32 exponent range, only the mantissa is cut to 10 bits.
func quantize(v float64, dtype string) float64 {
	switch dtype {
	case api.DTypeFloat32:
		return float64(float32(v))
	case api.DTypeFloat16:
		bits := math.Float32bits(float32(v))
		bits &^= (1 << 13) - 1
		return float64(math.Float32frombits(bits))
	}
	return v
}
