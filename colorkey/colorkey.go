// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package colorkey implements a simple color key
// for the roles of the clones in a plot.
package colorkey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// Role is the role of a clone
// in an inferred composition.
type Role string

// Valid roles.
const (
	Other   Role = "other"
	MakeOne Role = "makeone"
	Parent  Role = "parent"
	Outlier Role = "outlier"
)

// Roles returns the valid roles
// in drawing order.
func Roles() []Role {
	return []Role{Other, MakeOne, Parent, Outlier}
}

// Key stores the colors of each role.
type Key struct {
	color map[Role]color.Color
}

// Default returns the default color key.
func Default() *Key {
	return &Key{
		color: map[Role]color.Color{
			Other:   color.RGBA{150, 150, 150, 255},
			MakeOne: color.RGBA{27, 158, 119, 255},
			Parent:  color.RGBA{117, 112, 179, 255},
			Outlier: color.RGBA{217, 95, 2, 255},
		},
	}
}

// Color returns the color associated with a role.
// If no color is defined for the role,
// it will return opaque black.
func (k *Key) Color(r Role) (color.Color, bool) {
	c, ok := k.color[r]
	if !ok {
		return color.RGBA{0, 0, 0, 255}, false
	}
	return c, true
}

// Read reads a key file
// used to define the colors of the clone roles.
// Roles not defined in the file
// keep the default colors.
//
// A key file is a tab-delimited file
// with the following required columns:
//
//	-role	the role of the clone:
//		"other", "makeone", "parent" or "outlier"
//	-color	an RGB value separated by commas,
//		for example "125,132,148".
//
// Any other columns, will be ignored.
// Here is an example of a key file:
//
//	role	color	comment
//	makeone	0, 84, 119	composition
//	parent	251, 236, 93	sum of two or more clones
//	outlier	229, 0, 0	false positives
func Read(r io.Reader) (*Key, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range []string{"role", "color"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	k := Default()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "role"
		if len(row) <= fields[f] {
			return nil, fmt.Errorf("on row %d: field %q: missing value", ln, f)
		}
		role := Role(strings.ToLower(strings.TrimSpace(row[fields[f]])))
		if _, ok := k.color[role]; !ok {
			return nil, fmt.Errorf("on row %d: field %q: unknown role %q", ln, f, role)
		}

		f = "color"
		if len(row) <= fields[f] {
			return nil, fmt.Errorf("on row %d: field %q: missing value", ln, f)
		}
		c, err := parseRGB(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		k.color[role] = c
	}
	return k, nil
}

func parseRGB(s string) (color.RGBA, error) {
	val := strings.Split(s, ",")
	if len(val) != 3 {
		return color.RGBA{}, fmt.Errorf("found %d values, want 3", len(val))
	}

	var rgb [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.Atoi(strings.TrimSpace(val[i]))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("[%s value]: %v", name, err)
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("[%s value]: invalid value %d", name, v)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}, nil
}
