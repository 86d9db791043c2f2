// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package regions

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
)

var ErrUnknownRegion = errors.New("unknown region")

// Region identifies one of the six trackable timer targets.
// The zero value is not a valid region.
type Region uint8

const (
	Aa1 Region = iota + 1
	Aa2
	Aa3
	Ac1
	Ac2
	Ac3
)

// wire names, indexed by Region
var names = [...]string{
	Aa1: "aa1",
	Aa2: "aa2",
	Aa3: "aa3",
	Ac1: "ac1",
	Ac2: "ac2",
	Ac3: "ac3",
}

// All returns every valid region in declaration order
func All() []Region {
	return []Region{Aa1, Aa2, Aa3, Ac1, Ac2, Ac3}
}

// Parse converts a wire string into a Region.
// Returns ErrUnknownRegion for anything outside the six identifiers.
func Parse(s string) (Region, error) {
	for _, r := range All() {
		if names[r] == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

// Valid reports whether r is one of the six regions
func (r Region) Valid() bool {
	return r >= Aa1 && r <= Ac3
}

// String returns the wire form ("aa1", ...), used in URLs, JSON and SQL
func (r Region) String() string {
	if !r.Valid() {
		return "Region(" + strconv.Itoa(int(r)) + ")"
	}
	return names[r]
}

func (r Region) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, r)
	}
	return []byte(names[r]), nil
}

func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores the region as TEXT
func (r Region) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, r)
	}
	return names[r], nil
}

// Scan reads a TEXT column, rejecting unknown values
func (r *Region) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Region", src)
	}
}

// LastStopped is the region and elapsed seconds of the most recently
// completed timer.
type LastStopped struct {
	Region   Region `json:"region"`
	Duration int64  `json:"duration"`
}
