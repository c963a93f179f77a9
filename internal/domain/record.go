package domain

// Historical dataset column names.
const (
	ColMinTemp       = "MinTemp"
	ColMaxTemp       = "MaxTemp"
	ColWindGustDir   = "WindGustDir"
	ColWindGustSpeed = "WindGustSpeed"
	ColHumidity      = "Humidity"
	ColPressure      = "Pressure"
	ColTemp          = "Temp"
	ColRainTomorrow  = "RainTomorrow"
)

// RequiredColumns lists the columns every historical source must carry.
var RequiredColumns = []string{
	ColMinTemp, ColMaxTemp, ColWindGustDir, ColWindGustSpeed,
	ColHumidity, ColPressure, ColTemp, ColRainTomorrow,
}

// FeatureColumns is the classifier input order. WindGustDir is encoded.
var FeatureColumns = []string{
	ColMinTemp, ColMaxTemp, ColWindGustDir, ColWindGustSpeed,
	ColHumidity, ColPressure, ColTemp,
}

// HistoricalRecord is one cleaned row of the historical dataset.
type HistoricalRecord struct {
	MinTemp       float64 `json:"min_temp"`
	MaxTemp       float64 `json:"max_temp"`
	WindGustDir   string  `json:"wind_gust_dir"`
	WindGustSpeed float64 `json:"wind_gust_speed"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	Temp          float64 `json:"temp"`
	RainTomorrow  string  `json:"rain_tomorrow"`
}

// Continuous returns the value of a numeric column, and false for
// categorical or unknown columns.
func (r HistoricalRecord) Continuous(column string) (float64, bool) {
	switch column {
	case ColMinTemp:
		return r.MinTemp, true
	case ColMaxTemp:
		return r.MaxTemp, true
	case ColWindGustSpeed:
		return r.WindGustSpeed, true
	case ColHumidity:
		return r.Humidity, true
	case ColPressure:
		return r.Pressure, true
	case ColTemp:
		return r.Temp, true
	default:
		return 0, false
	}
}
