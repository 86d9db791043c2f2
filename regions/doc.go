// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package regions defines the closed set of timer regions.

# Regions

There are exactly six regions:

	aa1, aa2, aa3, ac1, ac2, ac3

Region is a small integer type with a fixed mapping to its wire string:

	regions.Ac2.String() // "ac2"

# Parsing

Every boundary that turns a string into a Region goes through Parse,
which rejects unknown values:

	r, err := regions.Parse(r.PathValue("region"))
	if errors.Is(err, regions.ErrUnknownRegion) {
		// 400
	}

Region implements encoding.TextMarshaler/TextUnmarshaler (JSON) and
driver.Valuer/sql.Scanner (database columns), all of which reject values
outside the six identifiers.

# LastStopped

LastStopped records the region and duration of the most recently stopped
timer. It is a plain comparable struct.
*/
package regions
