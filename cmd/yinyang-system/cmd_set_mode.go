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

package main

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/yinyang/systheme/i18n"
)

var shortSetModeHelp = i18n.G("Switch to the light or dark theme")
var longSetModeHelp = i18n.G(`
The set-mode command applies the theme configured for light or dark
mode. The themes are read from theme_light and theme_dark in the
configuration file.
`)

type cmdSetMode struct {
	Dark  bool `long:"dark"`
	Light bool `long:"light"`
}

func init() {
	addCommand("set-mode", shortSetModeHelp, longSetModeHelp, func() flags.Commander { return &cmdSetMode{} }, map[string]string{
		"dark":  i18n.G("Apply the dark theme"),
		"light": i18n.G("Apply the light theme"),
	})
}

func (x *cmdSetMode) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	if x.Dark == x.Light {
		return errors.New(i18n.G("exactly one of --dark or --light is required"))
	}

	sys, err := newSystem()
	if err != nil {
		return err
	}
	mode := i18n.G("light")
	if x.Dark {
		mode = i18n.G("dark")
	}
	if !sys.Enabled() {
		return fmt.Errorf(i18n.G("cannot switch to %s mode: the system theme is disabled"), mode)
	}
	if !sys.SetMode(x.Dark) {
		return fmt.Errorf(i18n.G("cannot switch to %s mode"), mode)
	}
	light, dark := sys.Themes()
	theme := light
	if x.Dark {
		theme = dark
	}
	fmt.Fprintf(Stdout, i18n.G("Switched to %s mode (%s)\n"), mode, theme)
	return nil
}
