package rainviewer

import "time"

// Timestamp returns the time the frame's dataset was generated at
func (f Frame) Timestamp() time.Time {
	return time.Unix(f.Time, 0).UTC()
}

// LatestRadar returns the most recent past radar frame, or nil when no
// past frames are published
func (m *WeatherMaps) LatestRadar() *Frame {
	if m == nil || len(m.PastRadar) == 0 {
		return nil
	}
	return &m.PastRadar[len(m.PastRadar)-1]
}

// RadarAt returns the radar frame (past or nowcast) closest to the
// specified time, or nil when no radar frames are published
func (m *WeatherMaps) RadarAt(t time.Time) *Frame {
	if m == nil {
		return nil
	}
	return closestFrame(t, m.PastRadar, m.NowcastRadar)
}

// SatelliteAt returns the infrared satellite frame closest to the
// specified time, or nil when no satellite frames are published
func (m *WeatherMaps) SatelliteAt(t time.Time) *Frame {
	if m == nil {
		return nil
	}
	return closestFrame(t, m.InfraredSatellite)
}

// RadarForPeriod returns all radar frames (past and nowcast) within the
// specified time period, inclusive, in published order
func (m *WeatherMaps) RadarForPeriod(start, end time.Time) []Frame {
	if m == nil {
		return nil
	}

	var frames []Frame
	for _, seq := range [][]Frame{m.PastRadar, m.NowcastRadar} {
		for _, frame := range seq {
			ts := frame.Timestamp()
			if (ts.Equal(start) || ts.After(start)) &&
				(ts.Equal(end) || ts.Before(end)) {
				frames = append(frames, frame)
			}
		}
	}
	return frames
}

// closestFrame scans the given sequences for the frame whose timestamp is
// closest to t
func closestFrame(t time.Time, sequences ...[]Frame) *Frame {
	var closest *Frame
	minDiff := time.Duration(1<<63 - 1) // Max duration

	for _, seq := range sequences {
		for i := range seq {
			diff := seq[i].Timestamp().Sub(t)
			if diff < 0 {
				diff = -diff
			}
			if diff < minDiff {
				minDiff = diff
				closest = &seq[i]
			}
		}
	}
	return closest
}
