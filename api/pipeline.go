package api

import (
	"github.com/tradegym/marketsim/model"
)

// FeaturePipeline transforms a raw observation window into the feature values handed to the
// caller. The exchange treats it as opaque; it only runs the transform on each window.
type FeaturePipeline interface {
	Transform(window []model.PriceRow) ([]float64, error)
}
