// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2025 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package main_test

import (
	. "gopkg.in/check.v1"

	yinyang "github.com/yinyang/systheme/cmd/yinyang-system"
	"github.com/yinyang/systheme/testutil"
)

type setModeSuite struct {
	BaseSuite
}

var _ = Suite(&setModeSuite{})

func (s *setModeSuite) TestSetModeDark(c *C) {
	cmd := testutil.MockCommand(c, "lookandfeeltool", "")
	defer cmd.Restore()

	_, err := yinyang.Parser().ParseArgs([]string{"--desktop=kde", "set-mode", "--dark"})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "Switched to dark mode (org.kde.breezedark.desktop)\n")
	c.Check(cmd.Calls(), DeepEquals, [][]string{
		{"lookandfeeltool", "-a", "org.kde.breezedark.desktop"},
		{"lookandfeeltool", "-a", "org.kde.breezedark.desktop"},
	})
}

func (s *setModeSuite) TestSetModeConfiguredThemes(c *C) {
	cmd := testutil.MockCommand(c, "gsettings", "")
	defer cmd.Restore()
	s.writeConfig(c, `
[system]
desktop = gtk
theme_light = Arc
theme_dark = Arc-Dark
`)

	_, err := yinyang.Parser().ParseArgs([]string{"set-mode", "--light"})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "Switched to light mode (Arc)\n")
	c.Check(cmd.Calls(), DeepEquals, [][]string{
		{"gsettings", "set", "org.gnome.shell.extensions.user-theme", "name", "Arc"},
	})
}

func (s *setModeSuite) TestSetModePartialConfigKeepsDefaults(c *C) {
	cmd := testutil.MockCommand(c, "lookandfeeltool", "")
	defer cmd.Restore()
	s.writeConfig(c, "[system]\ntheme_dark = com.example.dark\n")

	_, err := yinyang.Parser().ParseArgs([]string{"--desktop=kde", "set-mode", "--light"})
	c.Assert(err, IsNil)
	c.Check(cmd.Calls()[0], DeepEquals, []string{"lookandfeeltool", "-a", "org.kde.breeze.desktop"})
}

func (s *setModeSuite) TestSetModeDisabled(c *C) {
	cmd := testutil.MockCommand(c, "lookandfeeltool", "")
	defer cmd.Restore()
	s.writeConfig(c, "[system]\nenabled = false\n")

	_, err := yinyang.Parser().ParseArgs([]string{"--desktop=kde", "set-mode", "--dark"})
	c.Check(err, ErrorMatches, "cannot switch to dark mode: the system theme is disabled")
	c.Check(cmd.Calls(), HasLen, 0)
}

func (s *setModeSuite) TestSetModeFails(c *C) {
	cmd := testutil.MockCommand(c, "lookandfeeltool", "exit 1")
	defer cmd.Restore()

	_, err := yinyang.Parser().ParseArgs([]string{"--desktop=kde", "set-mode", "--light"})
	c.Check(err, ErrorMatches, "cannot switch to light mode")
}

func (s *setModeSuite) TestSetModeNeedsExactlyOneMode(c *C) {
	for _, args := range [][]string{
		{"--desktop=kde", "set-mode"},
		{"--desktop=kde", "set-mode", "--dark", "--light"},
	} {
		_, err := yinyang.Parser().ParseArgs(args)
		c.Check(err, ErrorMatches, "exactly one of --dark or --light is required")
	}
}
