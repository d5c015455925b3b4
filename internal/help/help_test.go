// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestNewSystemHonorsNoColor(t *testing.T) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()

	color.NoColor = false
	s := NewSystem(true)
	if !color.NoColor {
		t.Fatal("NewSystem(true) must disable colored output")
	}
	if got := s.colors["title"].Sprint("Usage"); strings.Contains(got, "\x1b[") {
		t.Errorf("escape sequence emitted with colors disabled: %q", got)
	}
}

type stubProvider struct{ info DetectorInfo }

func (p stubProvider) GetDetectorInfo() DetectorInfo { return p.info }

func TestShowDetectorHelpLookup(t *testing.T) {
	s := NewSystem(true)
	s.RegisterProvider(stubProvider{info: DetectorInfo{
		Name:             "PHONE",
		ShortDescription: "Phone numbers",
	}})

	if !s.ShowDetectorHelp("phone") {
		t.Error("registered detector not found by lowercase name")
	}
	if s.ShowDetectorHelp("nosuch") {
		t.Error("unknown detector reported as found")
	}
}
