/*
 * interfaces.go, part of xyztraj.
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

package xyztraj

//Errors

// Error is the interface all errors returned by the subpackages of this
// library implement. The Decorate method adds information to the error as it
// goes up the calling stack, without changing its type or wrapping it around
// something else. Each call returns the resulting decoration slice; passing
// an empty string only retrieves the current value. Decorations should
// contain the name of the function in the calling stack plus, optionally,
// extra information in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectory files.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError is implemented by the harmless error signaling the normal
// end of a trajectory, so it can be filtered in a type switch before the
// actual failures are handled.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just separates this interface from other TrajError's
}
