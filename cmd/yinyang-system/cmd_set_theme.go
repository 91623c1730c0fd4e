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
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/yinyang/systheme/i18n"
)

var shortSetThemeHelp = i18n.G("Apply the given theme")
var longSetThemeHelp = i18n.G(`
The set-theme command applies the theme with the given identifier, as
listed by the themes command.
`)

type cmdSetTheme struct {
	Positional struct {
		Theme string `positional-arg-name:"<theme>" required:"yes"`
	} `positional-args:"yes"`
}

func init() {
	addCommand("set-theme", shortSetThemeHelp, longSetThemeHelp, func() flags.Commander { return &cmdSetTheme{} }, nil)
}

func (x *cmdSetTheme) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	sys, err := newSystem()
	if err != nil {
		return err
	}
	applied, err := sys.SetTheme(x.Positional.Theme)
	if err != nil {
		return err
	}
	fmt.Fprintf(Stdout, i18n.G("Theme %q applied\n"), applied)
	return nil
}
