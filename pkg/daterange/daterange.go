// Package daterange iterates over days the way range iterates over ints.
package daterange

import (
	"fmt"
	"iter"
	"time"

	"github.com/spf13/cast"
)

const day = 24 * time.Hour

// Days yields start, start+24h, ... for every whole day before end.
// Nothing is yielded when end is not after start.
func Days(start, end time.Time) iter.Seq[time.Time] {
	n := int(end.Sub(start) / day)
	return func(yield func(time.Time) bool) {
		for i := 0; i < n; i++ {
			if !yield(start.Add(time.Duration(i) * day)) {
				return
			}
		}
	}
}

// Parse accepts a time.Time or a date string such as "2018-12-01".
// Strings without a zone are read as UTC.
func Parse(v any) (time.Time, error) {
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %v: %w", v, err)
	}
	return t, nil
}

// Between parses both bounds and returns the days between them.
func Between(start, end any) (iter.Seq[time.Time], error) {
	s, err := Parse(start)
	if err != nil {
		return nil, err
	}
	e, err := Parse(end)
	if err != nil {
		return nil, err
	}
	return Days(s, e), nil
}
