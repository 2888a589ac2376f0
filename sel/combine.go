package sel

import (
	"log"

	"xyztraj/traj/xyz"
)

//Request names one input trajectory and what is wanted from it.
type Request struct {
	File    string
	Frames  string //range expression; empty selects nothing and skips the file
	Reverse bool
}

//Combiner accumulates selected frames across input files. It is owned by a
//single combination run: selections are appended between files, never
//concurrently, and the result is written once at the end.
type Combiner struct {
	frames []*xyz.Frame
}

//NewCombiner returns an empty Combiner.
func NewCombiner() *Combiner {
	return new(Combiner)
}

//Add appends a per-file selection, in order, after the ones already held.
func (C *Combiner) Add(frames []*xyz.Frame) {
	C.frames = append(C.frames, frames...)
}

//Len returns the number of frames accumulated so far.
func (C *Combiner) Len() int {
	return len(C.frames)
}

//WriteFile serializes the accumulated frames, verbatim and back to back, to
//the trajectory file name. An empty combination is an error, checked before
//the file is created: no output file is ever written for it.
func (C *Combiner) WriteFile(name string) error {
	if len(C.frames) == 0 {
		return Error{EmptyCombination, name, []string{"WriteFile"}}
	}
	W, err := xyz.NewWriter(name)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	for _, frame := range C.frames {
		if err := W.WNext(frame); err != nil {
			W.Close()
			return errDecorate(err, "WriteFile")
		}
	}
	if err := W.Close(); err != nil {
		return errDecorate(err, "WriteFile")
	}
	return nil
}

//Combine runs the whole pipeline: for each request, in the order given, it
//parses the range expression, reads the trajectory, gathers the selection
//(reversed if asked) and accumulates it; at the end the combined trajectory
//is written to out. A file that can't be read or parsed contributes zero
//frames and is reported through the log while the remaining files are
//processed. Malformed expressions and out-of-range selections abort instead:
//only the caller can correct those, and defaulting them to "no frames" or
//"all frames" would silently produce the wrong trajectory.
func Combine(requests []Request, out string) error {
	comb := NewCombiner()
	for _, req := range requests {
		indices, err := ParseRange(req.Frames)
		if err != nil {
			return errDecorate(err, "Combine: "+req.File)
		}
		if len(indices) == 0 {
			continue
		}
		t, err := xyz.Read(req.File)
		if err != nil {
			log.Printf("xyztraj: %s contributes no frames: %v", req.File, err)
			continue
		}
		picked, err := Select(t, indices, req.Reverse)
		if err != nil {
			return errDecorate(err, "Combine")
		}
		comb.Add(picked)
	}
	return comb.WriteFile(out)
}
