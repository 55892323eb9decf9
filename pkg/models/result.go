package models

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/vmihailenco/msgpack/v5"
)

// ResultEntity is the key prefix of race results in the store
const ResultEntity = "result"

// Standing is one line of the final classification
type Standing struct {
	Place    int     `msgpack:"place"`
	Name     string  `msgpack:"name"`
	Laps     int     `msgpack:"laps"`
	Progress float64 `msgpack:"progress"`
	Player   bool    `msgpack:"player"`
}

// RaceResult is the record kept for every finished race
type RaceResult struct {
	ID         string          `msgpack:"id"`
	FinishedAt time.Time       `msgpack:"finished_at"`
	Car        string          `msgpack:"car"`
	Laps       int             `msgpack:"laps"`
	Placement  int             `msgpack:"placement"`
	FieldSize  int             `msgpack:"field_size"`
	TotalTime  time.Duration   `msgpack:"total_time"`
	LapTimes   []time.Duration `msgpack:"lap_times"`
	BestLap    time.Duration   `msgpack:"best_lap"`
	Standings  []Standing      `msgpack:"standings"`
}

// NewRaceResult creates a result with a time ordered id
func NewRaceResult(finishedAt time.Time) *RaceResult {
	id, err := ksuid.NewRandomWithTime(finishedAt)
	if err != nil {
		id = ksuid.New()
	}
	return &RaceResult{
		ID:         id.String(),
		FinishedAt: finishedAt,
		LapTimes:   []time.Duration{},
	}
}

// Marshal encodes the result for storage
func (r *RaceResult) Marshal() ([]byte, error) {
	buf, err := msgpack.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result %s: %w", r.ID, err)
	}
	return buf, nil
}

// UnmarshalRaceResult decodes a stored result
func UnmarshalRaceResult(data []byte) (*RaceResult, error) {
	var r RaceResult
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &r, nil
}
