package main

import (
	"testing"
)

func TestFlagSelections(Te *testing.T) {
	files := []string{"scans/1.xyz", "scans/2.xyz", "scans/3.xyz"}
	requests, err := flagSelections(files, []string{"1.xyz=1-3", "3.xyz=1,4-6:r"})
	if err != nil {
		Te.Fatal(err)
	}
	if len(requests) != 2 {
		Te.Fatalf("got %d requests, want 2", len(requests))
	}
	if requests[0].File != "scans/1.xyz" || requests[0].Frames != "1-3" || requests[0].Reverse {
		Te.Errorf("wrong first request: %+v", requests[0])
	}
	if requests[1].File != "scans/3.xyz" || requests[1].Frames != "1,4-6" || !requests[1].Reverse {
		Te.Errorf("wrong second request: %+v", requests[1])
	}
	if _, err := flagSelections(files, []string{"nope.xyz=1"}); err == nil {
		Te.Error("flag for an undiscovered file did not fail")
	}
	if _, err := flagSelections(files, []string{"1.xyz"}); err == nil {
		Te.Error("flag without '=' did not fail")
	}
	if _, err := flagSelections(files, []string{"1.xyz=5-3"}); err == nil {
		Te.Error("descending range in a flag did not fail")
	}
}
