package openweather

// apiResponse is the subset of the OpenWeatherMap current weather payload
// the tracker reads.
type apiResponse struct {
	Main apiMain `json:"main"`
}

// apiMain carries the temperature block. Temp is a pointer so a payload
// without a temperature can be told apart from a real 0 °C reading.
type apiMain struct {
	Temp *float64 `json:"temp"`
}
