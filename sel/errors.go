package sel

import (
	"fmt"

	"xyztraj"
)

//errDecorate is a helper function that asserts that the error implements
//xyztraj.Error and decorates the error with the caller's name before returning it.
//if used with any other error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(xyztraj.Error)
	err2.Decorate(caller)
	return err2
}

//ParseError reports a malformed frame-range expression. The offending token
//is kept so the caller can tell the user what to fix.
type ParseError struct {
	message string
	expr    string
	token   string
	deco    []string
}

func (err ParseError) Error() string {
	return fmt.Sprintf("frame range %q: %s (token %q)", err.expr, err.message, err.token)
}

//Decorate adds new information to the error
func (E ParseError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Token returns the token that failed to parse.
func (err ParseError) Token() string { return err.token }

//IndexError reports a frame selection outside the trajectory. Selections
//past the end are an error, never clamped to the last frame.
type IndexError struct {
	index    int
	nframes  int
	filename string
	deco     []string
}

func (err IndexError) Error() string {
	return fmt.Sprintf("file %s: frame %d requested but the trajectory has %d frames", err.filename, err.index, err.nframes)
}

//Decorate adds new information to the error
func (E IndexError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Index returns the out-of-range frame index.
func (err IndexError) Index() int { return err.index }

//Error is the general structure for combination errors.
type Error struct {
	message  string
	filename string //the output file, or empty string if none.
	deco     []string
}

func (err Error) Error() string {
	return fmt.Sprintf("combine %s: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

const (
	EmptyCombination = "no frames selected from any input trajectory"
)
