package xyz

import (
	"io"
	"os"
)

//Write!

//Writer is the handle for an XYZ trajectory open for writing. Frames are
//written back to back, text untouched: no renumbering, no rewriting of the
//header or comment lines.
type Writer struct {
	f         *os.File
	h         io.WriteCloser //compressor, nil for plain text
	filename  string
	frames    int
	writeable bool
}

//NewWriter creates the file name (truncating it if it exists) and returns a
//handle ready to receive frames. As on the reading side, the filename suffix
//selects the compression.
func NewWriter(name string) (*Writer, error) {
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.h, err = newCompressor(name, W.f)
	if err != nil {
		W.f.Close()
		return nil, Error{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.filename = name
	W.writeable = true
	return W, nil
}

//WNext appends the frame to the trajectory, verbatim.
func (W *Writer) WNext(frame *Frame) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if frame == nil {
		return Error{NilFrame, W.filename, []string{"WNext"}, true}
	}
	var out io.Writer = W.f
	if W.h != nil {
		out = W.h
	}
	if _, err := io.WriteString(out, frame.String()); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	W.frames++
	return nil
}

//NFrames returns the number of frames written so far.
func (W *Writer) NFrames() int {
	return W.frames
}

//Close flushes and closes the trajectory. The handle can not be used after
//this call.
func (W *Writer) Close() error {
	if !W.writeable {
		return nil
	}
	W.writeable = false
	if W.h != nil {
		if err := W.h.Close(); err != nil {
			W.f.Close()
			return Error{err.Error(), W.filename, []string{"Close"}, true}
		}
	}
	if err := W.f.Close(); err != nil {
		return Error{err.Error(), W.filename, []string{"Close"}, true}
	}
	return nil
}
