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

package system

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/yinyang/systheme/dirs"
	"github.com/yinyang/systheme/logger"
	"github.com/yinyang/systheme/osutil"
	"github.com/yinyang/systheme/plugin"
)

const (
	gnomeUserThemeSchema = "org.gnome.shell.extensions.user-theme"
	gnomeUserThemeKey    = "name"
)

// Gnome sets the GNOME Shell theme through the user-theme extension.
//
// Only themes installed by the user are supported, the themes shipped
// with the system are not.
type Gnome struct {
	*plugin.Commandline

	env Environment
}

// NewGnome returns an adapter driving gsettings.
func NewGnome(env Environment) *Gnome {
	return &Gnome{
		Commandline: plugin.NewCommandline([]string{
			"gsettings", "set", gnomeUserThemeSchema, gnomeUserThemeKey, plugin.ThemePlaceholder,
		}),
		env: env,
	}
}

func (*Gnome) adapter() {}

func (*Gnome) Name() string {
	return "System"
}

// Available checks that the user-theme schema is installed. It does
// not check that the extension is actually enabled.
func (g *Gnome) Available() bool {
	command := g.Command()
	tool, schema, key := command[0], command[2], command[3]

	output, err := exec.Command(tool, "get", schema, key).CombinedOutput()
	if osutil.IsExecutableNotFound(err) {
		logger.Debugf("cannot use %s: %v", tool, err)
		return false
	}
	if strings.Contains(string(output), fmt.Sprintf("No such schema %q", schema)) {
		logger.Debugf("cannot use %s: schema %s is not installed", tool, schema)
		return false
	}
	return true
}

// AvailableThemes lists the shell themes found in the theme directories
// of the user, mapped to themselves.
func (g *Gnome) AvailableThemes() map[string]string {
	themes := make(map[string]string)
	if g.env.HomeDir == "" {
		return themes
	}
	for _, dir := range dirs.UserThemesDirs(g.env.HomeDir) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Debugf("cannot list themes in %s: %v", dir, err)
			}
			continue
		}
		for _, entry := range entries {
			if osutil.IsDirectory(filepath.Join(dir, entry.Name(), "gnome-shell")) {
				themes[entry.Name()] = entry.Name()
			}
		}
	}
	return themes
}

// SetMode applies the theme configured for the given mode.
func (g *Gnome) SetMode(dark bool) bool {
	if !g.Enabled() {
		return false
	}
	theme := g.ThemeFor(dark)
	applied, err := g.SetTheme(theme)
	if err != nil {
		logger.Debugf("%v", err)
		return false
	}
	return applied == theme
}
