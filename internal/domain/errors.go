package domain

import "errors"

var (
	// ErrInputValidation reports a missing or empty query.
	ErrInputValidation = errors.New("invalid input")

	// ErrUpstreamData reports a live reading that is absent or malformed.
	ErrUpstreamData = errors.New("upstream data unavailable")

	// ErrDataLoad reports a historical source that cannot be read.
	ErrDataLoad = errors.New("historical data load failed")

	// ErrDataQuality reports a historical source with no usable rows after cleaning.
	ErrDataQuality = errors.New("historical data unusable")

	// ErrDirectionMapping reports a wind bearing that matched no compass sector.
	ErrDirectionMapping = errors.New("wind direction mapping failed")

	// ErrModelTraining reports a model that could not be fitted.
	ErrModelTraining = errors.New("model training failed")
)

// Error kinds returned by ErrorKind.
const (
	KindInput     = "input"
	KindUpstream  = "upstream"
	KindData      = "data"
	KindDirection = "direction"
	KindModel     = "model"
	KindInternal  = "internal"
)

// ErrorKind classifies err into one of the Kind* labels. Nil yields "".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInputValidation):
		return KindInput
	case errors.Is(err, ErrUpstreamData):
		return KindUpstream
	case errors.Is(err, ErrDataLoad), errors.Is(err, ErrDataQuality):
		return KindData
	case errors.Is(err, ErrDirectionMapping):
		return KindDirection
	case errors.Is(err, ErrModelTraining):
		return KindModel
	default:
		return KindInternal
	}
}

// IsUpstream reports whether err originated outside the pipeline.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstreamData)
}
