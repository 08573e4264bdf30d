package timeseries

import (
	"fmt"

	"github.com/goccy/go-json"
)

type seriesJSON struct {
	Spacing float64     `json:"spacing"`
	Points  []DataPoint `json:"points"`
}

// MarshalJSON encodes the series as its spacing and ordered observations
func (s *Series) MarshalJSON() ([]byte, error) {
	points := s.points
	if points == nil {
		points = []DataPoint{}
	}
	return json.Marshal(seriesJSON{
		Spacing: s.spacing,
		Points:  points,
	})
}

// UnmarshalJSON decodes a series and validates its spacing. A missing spacing defaults to
// DefaultSpacing. The decoded series is modifiable.
func (s *Series) UnmarshalJSON(data []byte) error {
	sj := seriesJSON{Spacing: DefaultSpacing}
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	decoded, err := FromPoints(sj.Spacing, sj.Points)
	if err != nil {
		return fmt.Errorf("unable to decode series, %w", err)
	}
	*s = *decoded
	return nil
}
