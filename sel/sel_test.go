package sel

import (
	"os"
	"reflect"
	"testing"

	"xyztraj/traj/xyz"
)

func TestParseRange(Te *testing.T) {
	good := []struct {
		expr string
		want []int
	}{
		{"1,3-5,9", []int{1, 3, 4, 5, 9}},
		{"2-2", []int{2}},
		{"", nil},
		{"   ", nil},
		{"3,1,2", []int{3, 1, 2}}, //order of appearance, not sorted
		{"2,2,1-2", []int{2, 2, 1, 2}},
		{" 1 , 2-3 ", []int{1, 2, 3}},
	}
	for _, c := range good {
		got, err := ParseRange(c.expr)
		if err != nil {
			Te.Errorf("%q: %v", c.expr, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			Te.Errorf("%q: got %v, want %v", c.expr, got, c.want)
		}
	}
	bad := []string{"5-3", "1,,2", ",1", "a", "1-x", "0", "0-2", "-3", "1.5"}
	for _, expr := range bad {
		if _, err := ParseRange(expr); err == nil {
			Te.Errorf("%q: no error", expr)
		} else if _, ok := err.(ParseError); !ok {
			Te.Errorf("%q: error is %T, not a ParseError", expr, err)
		}
	}
}

func TestSelect(Te *testing.T) {
	T, err := xyz.Read("../test/traj_a.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	picked, err := Select(T, []int{1, 3, 4, 5}, false)
	if err != nil {
		Te.Fatal(err)
	}
	for i, want := range []int{1, 3, 4, 5} {
		if picked[i] != T.Frame(want-1) {
			Te.Errorf("position %d: got the wrong frame", i)
		}
	}
	reversed, err := Select(T, []int{1, 3, 4, 5}, true)
	if err != nil {
		Te.Fatal(err)
	}
	for i, want := range []int{5, 4, 3, 1} {
		if reversed[i] != T.Frame(want-1) {
			Te.Errorf("reversed position %d: got the wrong frame", i)
		}
	}
	//duplicates are preserved, and reversal acts on the requested order.
	dup, err := Select(T, []int{2, 2, 1}, true)
	if err != nil {
		Te.Fatal(err)
	}
	for i, want := range []int{1, 2, 2} {
		if dup[i] != T.Frame(want-1) {
			Te.Errorf("duplicate position %d: got the wrong frame", i)
		}
	}
	if _, err := Select(T, []int{6}, false); err == nil {
		Te.Error("selection past the last frame did not fail")
	} else if _, ok := err.(IndexError); !ok {
		Te.Errorf("error is %T, not an IndexError", err)
	}
}

func TestCombine(Te *testing.T) {
	if err := os.MkdirAll("../test/out", 0755); err != nil {
		Te.Fatal(err)
	}
	out := "../test/out/combined.xyz"
	requests := []Request{
		{File: "../test/traj_a.xyz", Frames: "1-3"},
		{File: "../test/traj_b.xyz", Frames: "1-2", Reverse: true},
	}
	if err := Combine(requests, out); err != nil {
		Te.Fatal(err)
	}
	combined, err := xyz.Read(out)
	if err != nil {
		Te.Fatal(err)
	}
	if combined.NFrames() != 5 {
		Te.Fatalf("got %d frames, want 5", combined.NFrames())
	}
	a, err := xyz.Read("../test/traj_a.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	b, err := xyz.Read("../test/traj_b.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{
		a.Frame(0).String(),
		a.Frame(1).String(),
		a.Frame(2).String(),
		b.Frame(1).String(),
		b.Frame(0).String(),
	}
	for i, w := range want {
		if combined.Frame(i).String() != w {
			Te.Errorf("combined frame %d is not textually identical to its source", i+1)
		}
	}
}

func TestCombineEmpty(Te *testing.T) {
	if err := os.MkdirAll("../test/out", 0755); err != nil {
		Te.Fatal(err)
	}
	out := "../test/out/should_not_exist.xyz"
	os.Remove(out)
	requests := []Request{
		{File: "../test/traj_a.xyz", Frames: ""},
		{File: "../test/traj_b.xyz", Frames: "  "},
	}
	err := Combine(requests, out)
	if err == nil {
		Te.Fatal("empty combination did not fail")
	}
	if _, ok := err.(Error); !ok {
		Te.Errorf("error is %T, not a combination Error", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		Te.Error("an output file was written for an empty combination")
	}
}

func TestCombineSkipsBadFile(Te *testing.T) {
	if err := os.MkdirAll("../test/out", 0755); err != nil {
		Te.Fatal(err)
	}
	out := "../test/out/partial.xyz"
	requests := []Request{
		{File: "../test/no_such_file.xyz", Frames: "1-2"},
		{File: "../test/traj_b.xyz", Frames: "3"},
	}
	if err := Combine(requests, out); err != nil {
		Te.Fatal(err)
	}
	combined, err := xyz.Read(out)
	if err != nil {
		Te.Fatal(err)
	}
	if combined.NFrames() != 1 {
		Te.Errorf("got %d frames, want 1", combined.NFrames())
	}
}
