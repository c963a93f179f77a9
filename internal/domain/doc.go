// Package domain models the weather records, live readings and prediction
// results that flow through the forecasting pipeline.
//
// # Historical Records
//
// The historical dataset is a CSV export of daily observations, one row per
// day, with at least these columns:
//
//	MinTemp, MaxTemp, WindGustDir, WindGustSpeed, Humidity, Pressure, Temp, RainTomorrow
//
// WindGustDir is a 16-point compass name ("N", "NNE", ... "NNW") and
// RainTomorrow is a "Yes"/"No" label. Row order is the only ordering signal:
// there is no timestamp column, and one-step training pairs treat consecutive
// rows as consecutive observations.
//
// # Live Readings
//
// A live reading comes from the Weatherstack current-conditions endpoint.
// Wind direction arrives as a bearing in degrees and is bucketed into the same
// 16 compass sectors used by the historical data, see [CompassBucket]:
//
//	N    [348.75, 360) and [0, 11.25)
//	NNE  [11.25, 33.75)
//	...  22.5 degree half-open sectors clockwise ...
//	NNW  [326.25, 348.75)
//
// # Errors
//
// Failures are reported through sentinel errors wrapped with context.
// [ErrorKind] reduces any pipeline error to a short label so callers can tell
// an unavailable upstream apart from a model failure.
package domain
