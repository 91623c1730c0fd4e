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
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v2"

	"github.com/yinyang/systheme/i18n"
)

var shortThemesHelp = i18n.G("List the installed themes")
var longThemesHelp = i18n.G(`
The themes command lists the identifiers of the installed themes along
with their display names.
`)

type cmdThemes struct {
	Format string `long:"format" default:"text" choice:"text" choice:"json" choice:"yaml"`
}

func init() {
	addCommand("themes", shortThemesHelp, longThemesHelp, func() flags.Commander { return &cmdThemes{} }, map[string]string{
		// TRANSLATORS: This should not start with a lowercase letter.
		"format": i18n.G("Output format"),
	})
}

func (x *cmdThemes) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	sys, err := newSystem()
	if err != nil {
		return err
	}
	themes := sys.AvailableThemes()

	switch x.Format {
	case "json":
		// maps are encoded with sorted keys
		return json.NewEncoder(Stdout).Encode(themes)
	case "yaml":
		out, err := yaml.Marshal(themes)
		if err != nil {
			return err
		}
		_, err = Stdout.Write(out)
		return err
	}

	if len(themes) == 0 {
		fmt.Fprintln(Stderr, i18n.G("No themes found."))
		return nil
	}
	ids := make([]string, 0, len(themes))
	for id := range themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	w := tabwriter.NewWriter(Stdout, 5, 3, 2, ' ', 0)
	fmt.Fprintln(w, i18n.G("Theme\tName"))
	for _, id := range ids {
		fmt.Fprintf(w, "%s\t%s\n", id, themes[id])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(Stderr, i18n.NG("%d theme found.\n", "%d themes found.\n", len(themes)), len(themes))
	return nil
}
