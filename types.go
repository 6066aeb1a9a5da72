package rainviewer

// Frame identifies one published radar or satellite dataset
type Frame struct {
	// Time is the unix timestamp the dataset was generated at
	Time int64 `json:"time"`

	// Path is the service-relative fragment the dataset is served under
	Path string `json:"path"`
}

// WeatherMaps lists the imagery currently published by the service.
// It is created fresh by every Available call; the library performs no
// caching, so staleness tracking is up to the caller.
type WeatherMaps struct {
	// Version is the API version that produced this listing
	Version string

	// Generated is the unix timestamp the listing was produced at
	Generated int64

	// Host is the tile mirror base URL. GetTile resolves frame paths
	// against it, so frames must be fetched through the WeatherMaps
	// they came from.
	Host string

	// PastRadar holds historical radar frames, oldest first
	PastRadar []Frame

	// NowcastRadar holds forecast radar frames, soonest first
	NowcastRadar []Frame

	// InfraredSatellite holds infrared satellite frames, oldest first
	InfraredSatellite []Frame
}

// rawWeatherMaps mirrors the wire format of weather-maps.json
type rawWeatherMaps struct {
	Version   string       `json:"version"`
	Generated int64        `json:"generated"`
	Host      string       `json:"host"`
	Radar     rawRadar     `json:"radar"`
	Satellite rawSatellite `json:"satellite"`
}

type rawRadar struct {
	Past    []Frame `json:"past"`
	Nowcast []Frame `json:"nowcast"`
}

type rawSatellite struct {
	Infrared []Frame `json:"infrared"`
}
