package kdeplot

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"
)

//Labels holds the axis titles shared by all panels of a figure.
type Labels struct {
	X string
	Y string
}

//Panel holds the per-plot parameters of one config section: the bounds of
//the experimentally expected region, the size group tying its axis limits to
//other panels', and the color ramp.
type Panel struct {
	HeightMin float64
	HeightMax float64
	WidthMin  float64
	WidthMax  float64
	SizeGroup int
	Color     string
}

//ReadConfig parses the plot configuration file at path. The file is INI
//style: a [Labels] section with xlabel and ylabel, plus one section per
//panel (named freely; sorted section order decides panel order) with
//height_min, height_max, width_min, width_max, size_group and color keys.
func ReadConfig(path string) (Labels, []Panel, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return Labels{}, nil, Error{err.Error(), path, []string{"ReadConfig"}}
	}
	labels := Labels{
		X: v.GetString("labels.xlabel"),
		Y: v.GetString("labels.ylabel"),
	}
	var sections []string
	for key := range v.AllSettings() {
		if key == "labels" || key == "default" {
			continue
		}
		sections = append(sections, key)
	}
	if len(sections) == 0 {
		return Labels{}, nil, Error{"no panel sections in config", path, []string{"ReadConfig"}}
	}
	sort.Strings(sections)
	panels := make([]Panel, 0, len(sections))
	for _, s := range sections {
		p := Panel{
			HeightMin: v.GetFloat64(s + ".height_min"),
			HeightMax: v.GetFloat64(s + ".height_max"),
			WidthMin:  v.GetFloat64(s + ".width_min"),
			WidthMax:  v.GetFloat64(s + ".width_max"),
			SizeGroup: v.GetInt(s + ".size_group"),
			Color:     v.GetString(s + ".color"),
		}
		if _, ok := ramps[p.Color]; !ok {
			return Labels{}, nil, Error{fmt.Sprintf("section %s: unknown color %q (want one of %s)", s, p.Color, rampNames()), path, []string{"ReadConfig"}}
		}
		if p.HeightMin > p.HeightMax || p.WidthMin > p.WidthMax {
			return Labels{}, nil, Error{fmt.Sprintf("section %s: patch bounds are inverted", s), path, []string{"ReadConfig"}}
		}
		panels = append(panels, p)
	}
	return labels, panels, nil
}
