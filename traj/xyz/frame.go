package xyz

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Frame is one block of an XYZ trajectory: the atom-count header, the
//comment/energy line, and one line per atom. The text is kept verbatim
//(minus the line terminators) so a frame written back is byte-identical to
//the one read, whatever the original formatting was. Frames are values; once
//built they are only read.
type Frame struct {
	lines  []string
	natoms int
}

//NAtoms returns the number of atoms declared in the frame's header.
func (F *Frame) NAtoms() int {
	return F.natoms
}

//Comment returns the comment/energy line of the frame.
func (F *Frame) Comment() string {
	return F.lines[1]
}

//Lines returns a copy of the frame's text lines, including the header and
//comment lines.
func (F *Frame) Lines() []string {
	ret := make([]string, len(F.lines))
	copy(ret, F.lines)
	return ret
}

//String returns the frame's text, each line newline-terminated.
func (F *Frame) String() string {
	return strings.Join(F.lines, "\n") + "\n"
}

//Coords parses the atom lines of the frame and returns an NAtoms x 3 matrix
//with the coordinates plus a slice with the element symbols, in atom order.
func (F *Frame) Coords() (*mat.Dense, []string, error) {
	coords := make([]float64, 3*F.natoms)
	symbols := make([]string, F.natoms)
	for i := 0; i < F.natoms; i++ {
		fields := strings.Fields(F.lines[i+2])
		if len(fields) < 4 {
			return nil, nil, Error{fmt.Sprintf("atom line %d ill formed: %q", i+1, F.lines[i+2]), "", []string{"Coords"}, true}
		}
		symbols[i] = fields[0]
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("can't parse coordinate %d of atom %d (%s): %s", j+1, i+1, fields[j+1], err.Error()), "", []string{"Coords"}, true}
			}
			coords[3*i+j] = v
		}
	}
	return mat.NewDense(F.natoms, 3, coords), symbols, nil
}

//SwapAtoms returns a copy of the frame with the 1-based atoms a and b
//exchanged. Only the atom lines move; header and comment stay untouched.
func (F *Frame) SwapAtoms(a, b int) (*Frame, error) {
	if a < 1 || a > F.natoms || b < 1 || b > F.natoms {
		return nil, Error{fmt.Sprintf("atoms %d and %d requested but the frame has %d atoms", a, b, F.natoms), "", []string{"SwapAtoms"}, true}
	}
	lines := make([]string, len(F.lines))
	copy(lines, F.lines)
	lines[a+1], lines[b+1] = lines[b+1], lines[a+1]
	return &Frame{lines: lines, natoms: F.natoms}, nil
}
