package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// QueryObserver receives query timings.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveDBQuery(string, time.Duration) {}

func observerOrNop(o QueryObserver) QueryObserver {
	if o == nil {
		return nopObserver{}
	}
	return o
}

// timed runs fn and reports its duration under label.
func timed(o QueryObserver, label string, fn func() error) error {
	start := time.Now()
	err := fn()
	o.ObserveDBQuery(label, time.Since(start))
	return err
}

// decodeJSON unmarshals a JSONB column; NULL and empty values leave dest untouched.
func decodeJSON(raw types.NullJSONText, dest interface{}, column string) error {
	if !raw.Valid || len(raw.JSONText) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw.JSONText, dest); err != nil {
		return fmt.Errorf("decode %s: %w", column, err)
	}
	return nil
}
