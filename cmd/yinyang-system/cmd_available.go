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

var shortAvailableHelp = i18n.G("Check whether themes can be applied")
var longAvailableHelp = i18n.G(`
The available command reports whether the theming tool of the desktop
environment is installed and usable.
`)

type cmdAvailable struct{}

func init() {
	addCommand("available", shortAvailableHelp, longAvailableHelp, func() flags.Commander { return &cmdAvailable{} }, nil)
}

func (x *cmdAvailable) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	sys, err := newSystem()
	if err != nil {
		return err
	}
	if !sys.Available() {
		return fmt.Errorf(i18n.G("cannot use %s: the theming tool is not available"), sys.Desktop())
	}
	fmt.Fprintf(Stdout, i18n.G("%s theming is available\n"), sys.Desktop())
	return nil
}
