package main

import (
	"fmt"
	"strings"

	"github.com/gogpu/ppm"
	"github.com/gogpu/ppm/filter"
)

// parseFilters turns a comma-separated filter list into operations.
//
//	grayscale | gray
//	mask=<letters>   channels to keep, e.g. mask=rb
//	dither | floyd-steinberg
func parseFilters(s string) ([]ppm.Operation, error) {
	var ops []ppm.Operation
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, arg, hasArg := strings.Cut(field, "=")
		switch strings.ToLower(name) {
		case "grayscale", "gray":
			ops = append(ops, filter.Grayscale())
		case "dither", "floyd-steinberg":
			ops = append(ops, filter.FloydSteinberg())
		case "mask":
			if !hasArg {
				return nil, fmt.Errorf("filter %q: want mask=<channels>", field)
			}
			mask, err := ppm.ParseChannelMask(arg)
			if err != nil {
				return nil, fmt.Errorf("filter %q: %w", field, err)
			}
			ops = append(ops, filter.MaskChannels(mask))
		default:
			return nil, fmt.Errorf("unknown filter %q", field)
		}
	}
	return ops, nil
}
