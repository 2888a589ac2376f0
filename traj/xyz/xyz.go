/*
 * xyz.go, part of xyztraj.
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

//Package xyz reads and writes XYZ trajectory files, plain or compressed.
//A trajectory is the single-frame XYZ block repeated back to back, with the
//same atom count in every occurrence. Frames move through the package as
//verbatim text blocks; coordinates are only parsed on demand.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"xyztraj"
)

//Read!

//XYZR is the handle for an XYZ trajectory open for reading.
type XYZR struct {
	f        *os.File
	z        io.ReadCloser //decompressor, nil for plain text
	h        *bufio.Reader
	natoms   int
	section  int //lines per frame: natoms + 2
	served   int //frames returned so far
	pending  string
	haspend  bool
	filename string
	readable bool
}

//New opens the XYZ trajectory in name for reading and returns a pointer to
//the handle. The first line is read to fix the atom count every frame of the
//file must then declare.
func New(name string) (*XYZR, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	z, err := newDecompressor(name, f)
	if err != nil {
		f.Close()
		return nil, Error{"Can't read compressed trajectory: " + err.Error(), name, []string{"New"}, true}
	}
	var r io.Reader = f
	if z != nil {
		r = z
	}
	X, err := NewReader(r, name)
	if err != nil {
		if z != nil {
			z.Close()
		}
		f.Close()
		return nil, errDecorate(err, "New")
	}
	X.f = f
	X.z = z
	return X, nil
}

//NewReader is like New but reads the trajectory from r instead of opening a
//file. The name is only used to report errors.
func NewReader(r io.Reader, name string) (*XYZR, error) {
	X := new(XYZR)
	X.natoms = -1 //just so we know if things don't work
	X.filename = name
	X.h = bufio.NewReader(r)
	line, _, err := X.readLine()
	if err != nil {
		return nil, Error{"Can't read the first line: " + err.Error(), X.filename, []string{"NewReader"}, true}
	}
	X.natoms, err = strconv.Atoi(strings.TrimSpace(line))
	if err != nil || X.natoms <= 0 {
		return nil, Error{fmt.Sprintf("first line %q is not a valid atom count", line), X.filename, []string{"NewReader"}, true}
	}
	X.section = X.natoms + 2
	X.pending = line
	X.haspend = true
	X.readable = true
	return X, nil
}

//readLine returns the next line without its terminator. A final line without
//a trailing newline is still returned, with atEOF set.
func (X *XYZR) readLine() (line string, atEOF bool, err error) {
	line, err = X.h.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", true, io.EOF
		}
		err = nil
		atEOF = true
	}
	if err != nil {
		return "", false, err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, atEOF, nil
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (X *XYZR) Readable() bool {
	return X.readable
}

//Len returns the number of atoms in each frame of the trajectory.
func (X *XYZR) Len() int {
	return X.natoms
}

//Next returns the next frame of the trajectory. At the normal end of the
//trajectory the handle is closed and the returned error implements
//xyztraj.LastFrameError, so it can be told apart from actual failures. A
//frame cut short by the end of the file, or one whose header does not
//declare the same atom count as the first frame, is a critical error:
//trajectories with inconsistent frames are rejected, not truncated.
func (X *XYZR) Next() (*Frame, error) {
	if !X.readable {
		return nil, Error{TrajUnIniRead, X.filename, []string{"Next"}, true}
	}
	lines := make([]string, 0, X.section)
	if X.haspend {
		lines = append(lines, X.pending)
		X.haspend = false
	}
	for len(lines) < X.section {
		line, atEOF, err := X.readLine()
		if err == io.EOF {
			if len(lines) == 0 {
				//nothing bad happened here, the trajectory just ended.
				X.Close()
				return nil, newlastFrameError(X.filename, "Next")
			}
			return nil, Error{fmt.Sprintf("frame %d cut short: got %d of %d lines", X.served+1, len(lines), X.section), X.filename, []string{"Next"}, true}
		}
		if err != nil {
			return nil, Error{err.Error(), X.filename, []string{"Next"}, true}
		}
		lines = append(lines, line)
		if atEOF && len(lines) < X.section {
			return nil, Error{fmt.Sprintf("frame %d cut short: got %d of %d lines", X.served+1, len(lines), X.section), X.filename, []string{"Next"}, true}
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || n != X.natoms {
		return nil, Error{fmt.Sprintf("header of frame %d (%q) does not declare the expected %d atoms", X.served+1, lines[0], X.natoms), X.filename, []string{"Next"}, true}
	}
	X.served++
	return &Frame{lines: lines, natoms: X.natoms}, nil
}

//Close closes the handle, and marks it as unreadable.
func (X *XYZR) Close() {
	if !X.readable {
		return
	}
	if X.z != nil {
		X.z.Close()
	}
	if X.f != nil {
		X.f.Close()
	}
	X.readable = false
}

//Trajectory is a whole XYZ trajectory held in memory: the ordered frames
//parsed from one file, every one declaring the same atom count.
type Trajectory struct {
	filename string
	natoms   int
	frames   []*Frame
}

//NFrames returns the number of frames in the trajectory.
func (T *Trajectory) NFrames() int {
	return len(T.frames)
}

//NAtoms returns the number of atoms per frame.
func (T *Trajectory) NAtoms() int {
	return T.natoms
}

//FileName returns the name of the file the trajectory was read from.
func (T *Trajectory) FileName() string {
	return T.filename
}

//Frame returns the frame at the 0-based index i. It panics if i is out of
//range, as slice indexing would.
func (T *Trajectory) Frame(i int) *Frame {
	return T.frames[i]
}

//Read parses the whole trajectory in name and returns it.
func Read(name string) (*Trajectory, error) {
	X, err := New(name)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	defer X.Close()
	T, err := readAll(X)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return T, nil
}

//Decode is like Read but parses the trajectory from r. The name is only
//used to report errors.
func Decode(r io.Reader, name string) (*Trajectory, error) {
	X, err := NewReader(r, name)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	T, err := readAll(X)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return T, nil
}

func readAll(X *XYZR) (*Trajectory, error) {
	T := &Trajectory{filename: X.filename, natoms: X.natoms}
	for {
		frame, err := X.Next()
		if err != nil {
			if _, ok := err.(xyztraj.LastFrameError); ok {
				break
			}
			return nil, err
		}
		T.frames = append(T.frames, frame)
	}
	return T, nil
}
