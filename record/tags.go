// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/spritemanager/fault"
)

// PerspectiveTag - camera perspective a sprite is drawn for
type PerspectiveTag uint8

// possible perspectives
const (
	RPG PerspectiveTag = iota
	TopDown
	SideScroller
	Platformer
	perspectiveLimit // this must be the last value
)

// StyleTag - artistic style of a sprite
type StyleTag uint8

// possible styles
const (
	Pixel StyleTag = iota
	Vector
	HandDrawn
	Cartoon
	styleLimit // this must be the last value
)

var perspectiveNames = [...]string{
	RPG:          "RPG",
	TopDown:      "TopDown",
	SideScroller: "SideScroller",
	Platformer:   "Platformer",
}

var styleNames = [...]string{
	Pixel:     "Pixel",
	Vector:    "Vector",
	HandDrawn: "HandDrawn",
	Cartoon:   "Cartoon",
}

// IsValid - tag is inside the closed enumeration
func (tag PerspectiveTag) IsValid() bool {
	return tag < perspectiveLimit
}

// String - the tag name
func (tag PerspectiveTag) String() string {
	if !tag.IsValid() {
		return fmt.Sprintf("PerspectiveTag(%d)", uint8(tag))
	}
	return perspectiveNames[tag]
}

// MarshalText - convert tag to JSON text
func (tag PerspectiveTag) MarshalText() ([]byte, error) {
	if !tag.IsValid() {
		return nil, fault.ErrInvalidPerspectiveTag
	}
	return []byte(perspectiveNames[tag]), nil
}

// UnmarshalText - convert JSON text to a tag
func (tag *PerspectiveTag) UnmarshalText(s []byte) error {
	t, err := PerspectiveTagFromString(string(s))
	if nil != err {
		return err
	}
	*tag = t
	return nil
}

// PerspectiveTagFromString - case-insensitive name lookup
func PerspectiveTagFromString(s string) (PerspectiveTag, error) {
	for i, name := range perspectiveNames {
		if strings.EqualFold(name, s) {
			return PerspectiveTag(i), nil
		}
	}
	switch strings.ToLower(s) {
	case "top-down", "top_down":
		return TopDown, nil
	case "side-scroller", "side_scroller":
		return SideScroller, nil
	}
	return 0, fault.ErrInvalidPerspectiveTag
}

// IsValid - tag is inside the closed enumeration
func (tag StyleTag) IsValid() bool {
	return tag < styleLimit
}

// String - the tag name
func (tag StyleTag) String() string {
	if !tag.IsValid() {
		return fmt.Sprintf("StyleTag(%d)", uint8(tag))
	}
	return styleNames[tag]
}

// MarshalText - convert tag to JSON text
func (tag StyleTag) MarshalText() ([]byte, error) {
	if !tag.IsValid() {
		return nil, fault.ErrInvalidStyleTag
	}
	return []byte(styleNames[tag]), nil
}

// UnmarshalText - convert JSON text to a tag
func (tag *StyleTag) UnmarshalText(s []byte) error {
	t, err := StyleTagFromString(string(s))
	if nil != err {
		return err
	}
	*tag = t
	return nil
}

// StyleTagFromString - case-insensitive name lookup
func StyleTagFromString(s string) (StyleTag, error) {
	for i, name := range styleNames {
		if strings.EqualFold(name, s) {
			return StyleTag(i), nil
		}
	}
	switch strings.ToLower(s) {
	case "hand-drawn", "hand_drawn":
		return HandDrawn, nil
	}
	return 0, fault.ErrInvalidStyleTag
}
