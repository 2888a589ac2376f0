/*
 * sel.go, part of xyztraj.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

//Package sel selects frames out of XYZ trajectories: it parses frame-range
//expressions like "1,3-5,9", gathers the corresponding frames, and
//concatenates selections from several files into one combined trajectory.
package sel

import (
	"strconv"
	"strings"

	"xyztraj/traj/xyz"
)

//ParseRange parses a frame-range expression into the ordered list of 1-based
//indices it selects. The expression is a comma-separated list of integers
//and ascending hyphen ranges: "1,3-5,9" selects [1 3 4 5 9]. Indices appear
//in the result in the order the tokens are written, duplicates included;
//nothing is sorted or deduplicated. A range A-B with A > B is an error, not
//an auto-swap, as are empty and non-integer tokens and indices below 1. An
//empty expression is valid and selects nothing. ParseRange never prompts or
//retries; the caller owns any retry policy.
func ParseRange(expr string) ([]int, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	var indices []int
	for _, tok := range strings.Split(expr, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, ParseError{"empty token", expr, tok, []string{"ParseRange"}}
		}
		a, b, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, ParseError{"not an integer", expr, tok, []string{"ParseRange"}}
			}
			if n < 1 {
				return nil, ParseError{"frame indices start at 1", expr, tok, []string{"ParseRange"}}
			}
			indices = append(indices, n)
			continue
		}
		lo, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, ParseError{"range bound is not an integer", expr, tok, []string{"ParseRange"}}
		}
		hi, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return nil, ParseError{"range bound is not an integer", expr, tok, []string{"ParseRange"}}
		}
		if lo > hi {
			return nil, ParseError{"descending range", expr, tok, []string{"ParseRange"}}
		}
		if lo < 1 {
			return nil, ParseError{"frame indices start at 1", expr, tok, []string{"ParseRange"}}
		}
		for i := lo; i <= hi; i++ {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

//Select gathers the frames of t at the given 1-based indices, in the order
//listed, duplicates preserved. With reverse, the gathered sequence is
//reversed as a whole; this reverses the requested order, not the file order,
//when the indices were out of order or repeated. The underlying trajectory
//is never read backwards. An index outside [1, NFrames] is an error.
func Select(t *xyz.Trajectory, indices []int, reverse bool) ([]*xyz.Frame, error) {
	picked := make([]*xyz.Frame, 0, len(indices))
	for _, i := range indices {
		if i < 1 || i > t.NFrames() {
			return nil, IndexError{i, t.NFrames(), t.FileName(), []string{"Select"}}
		}
		picked = append(picked, t.Frame(i-1))
	}
	if reverse {
		for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
			picked[i], picked[j] = picked[j], picked[i]
		}
	}
	return picked, nil
}
