package rainviewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMaps() *WeatherMaps {
	return &WeatherMaps{
		Host: "https://tilecache.rainviewer.com",
		PastRadar: []Frame{
			{Time: 1699996800, Path: "/v2/radar/1699996800"},
			{Time: 1699997400, Path: "/v2/radar/1699997400"},
			{Time: 1699998000, Path: "/v2/radar/1699998000"},
		},
		NowcastRadar: []Frame{
			{Time: 1699998600, Path: "/v2/radar/nowcast_aabbccdd"},
			{Time: 1699999200, Path: "/v2/radar/nowcast_eeff0011"},
		},
		InfraredSatellite: []Frame{
			{Time: 1699997000, Path: "/v2/satellite/9a88180f6bf8"},
		},
	}
}

func TestFrameTimestamp(t *testing.T) {
	frame := Frame{Time: 1699996800, Path: "/v2/radar/1699996800"}
	assert.Equal(t, time.Date(2023, time.November, 14, 21, 20, 0, 0, time.UTC), frame.Timestamp())
}

func TestLatestRadar(t *testing.T) {
	maps := testMaps()
	frame := maps.LatestRadar()
	require.NotNil(t, frame)
	assert.Equal(t, "/v2/radar/1699998000", frame.Path)
}

func TestLatestRadarEmpty(t *testing.T) {
	assert.Nil(t, (&WeatherMaps{}).LatestRadar())
	assert.Nil(t, (*WeatherMaps)(nil).LatestRadar())
}

func TestRadarAt(t *testing.T) {
	maps := testMaps()

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{
			name:     "exact past frame",
			at:       time.Unix(1699997400, 0),
			expected: "/v2/radar/1699997400",
		},
		{
			name:     "between two past frames",
			at:       time.Unix(1699997400+200, 0),
			expected: "/v2/radar/1699997400",
		},
		{
			name:     "in the future picks a nowcast frame",
			at:       time.Unix(1699999200+3600, 0),
			expected: "/v2/radar/nowcast_eeff0011",
		},
		{
			name:     "long before the first frame",
			at:       time.Unix(0, 0),
			expected: "/v2/radar/1699996800",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := maps.RadarAt(tt.at)
			require.NotNil(t, frame)
			assert.Equal(t, tt.expected, frame.Path)
		})
	}
}

func TestRadarAtEmpty(t *testing.T) {
	assert.Nil(t, (&WeatherMaps{}).RadarAt(time.Now()))
	assert.Nil(t, (*WeatherMaps)(nil).RadarAt(time.Now()))
}

func TestSatelliteAt(t *testing.T) {
	maps := testMaps()
	frame := maps.SatelliteAt(time.Unix(1699999999, 0))
	require.NotNil(t, frame)
	assert.Equal(t, "/v2/satellite/9a88180f6bf8", frame.Path)

	assert.Nil(t, (&WeatherMaps{}).SatelliteAt(time.Now()))
}

func TestRadarForPeriod(t *testing.T) {
	maps := testMaps()

	frames := maps.RadarForPeriod(time.Unix(1699997400, 0), time.Unix(1699998600, 0))
	require.Len(t, frames, 3)
	assert.Equal(t, "/v2/radar/1699997400", frames[0].Path)
	assert.Equal(t, "/v2/radar/1699998000", frames[1].Path)
	assert.Equal(t, "/v2/radar/nowcast_aabbccdd", frames[2].Path)

	assert.Empty(t, maps.RadarForPeriod(time.Unix(0, 0), time.Unix(1, 0)))
	assert.Nil(t, (*WeatherMaps)(nil).RadarForPeriod(time.Unix(0, 0), time.Now()))
}
