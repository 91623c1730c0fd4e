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
	"path/filepath"

	. "gopkg.in/check.v1"

	yinyang "github.com/yinyang/systheme/cmd/yinyang-system"
	"github.com/yinyang/systheme/dirs"
	"github.com/yinyang/systheme/testutil"
)

type themesSuite struct {
	BaseSuite
}

var _ = Suite(&themesSuite{})

func (s *themesSuite) SetUpTest(c *C) {
	s.BaseSuite.SetUpTest(c)

	cmd := testutil.MockCommand(c, "lookandfeeltool", `
if [ "$1" = "-l" ]; then
    echo org.kde.breezedark.desktop
    echo com.example.plain
fi
`)
	s.AddCleanup(cmd.Restore)

	breezeDark := filepath.Join(dirs.SystemLookAndFeelDir, "org.kde.breezedark.desktop", "metadata.json")
	s.writeFileAt(c, breezeDark, `{"KPlugin": {"Name": "Breeze Dark"}}`)
}

func (s *themesSuite) TestThemesText(c *C) {
	rest, err := yinyang.Parser().ParseArgs([]string{"--desktop=kde", "themes"})
	c.Assert(err, IsNil)
	c.Assert(rest, DeepEquals, []string{})
	c.Check(s.Stdout(), Equals, `Theme                       Name
com.example.plain           com.example.plain
org.kde.breezedark.desktop  Breeze Dark
`)
	c.Check(s.Stderr(), Equals, "2 themes found.\n")
}

func (s *themesSuite) TestThemesJSON(c *C) {
	_, err := yinyang.Parser().ParseArgs([]string{"--desktop=kde", "themes", "--format=json"})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, `{"com.example.plain":"com.example.plain","org.kde.breezedark.desktop":"Breeze Dark"}`+"\n")
}

func (s *themesSuite) TestThemesYAML(c *C) {
	_, err := yinyang.Parser().ParseArgs([]string{"--desktop=kde", "themes", "--format=yaml"})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, `com.example.plain: com.example.plain
org.kde.breezedark.desktop: Breeze Dark
`)
}

func (s *themesSuite) TestThemesBadFormat(c *C) {
	_, err := yinyang.Parser().ParseArgs([]string{"--desktop=kde", "themes", "--format=xml"})
	c.Check(err, ErrorMatches, `.*Invalid value .xml. for option .--format.*`)
}

func (s *themesSuite) TestThemesNone(c *C) {
	_, err := yinyang.Parser().ParseArgs([]string{"--desktop=gtk", "themes"})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "")
	c.Check(s.Stderr(), Equals, "No themes found.\n")
}

func (s *themesSuite) TestThemesSingleTheme(c *C) {
	s.writeFileAt(c, filepath.Join(s.home, ".themes", "Arc-Dark", "gnome-shell", "gnome-shell.css"), "")

	_, err := yinyang.Parser().ParseArgs([]string{"--desktop=gtk", "themes"})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, `Theme     Name
Arc-Dark  Arc-Dark
`)
	c.Check(s.Stderr(), Equals, "1 theme found.\n")
}
