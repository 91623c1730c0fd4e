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

package dirs

import (
	"os"
	"path/filepath"
)

// the various file paths
var (
	// SystemLookAndFeelDir holds the look-and-feel packages shipped by
	// the distribution.
	SystemLookAndFeelDir string

	// SystemLocaleDir is where message catalogs are looked up.
	SystemLocaleDir string
)

const (
	// user relative locations, joined with a home directory
	userLookAndFeelDir  = ".local/share/plasma/look-and-feel"
	userLegacyThemesDir = ".themes"
	userThemesDir       = ".local/share/themes"
	userConfigDir       = ".config"

	configSubdir = "yinyang"
	configFile   = "system.conf"
)

func init() {
	// init the global directories at startup
	root := os.Getenv("SYSTHEME_ROOT")

	SetRootDir(root)
}

// SetRootDir allows settings a new global root directory, this is useful
// for e.g. chroot operations
func SetRootDir(rootdir string) {
	if rootdir == "" {
		rootdir = "/"
	}

	SystemLookAndFeelDir = filepath.Join(rootdir, "/usr/share/plasma/look-and-feel")
	SystemLocaleDir = filepath.Join(rootdir, "/usr/share/locale")
}

// UserLookAndFeelDir returns the per-user look-and-feel package
// directory below the given home directory.
func UserLookAndFeelDir(home string) string {
	return filepath.Join(home, userLookAndFeelDir)
}

// UserThemesDirs returns the directories user installed GTK and shell
// themes are searched in, in order of preference.
func UserThemesDirs(home string) []string {
	return []string{
		filepath.Join(home, userLegacyThemesDir),
		filepath.Join(home, userThemesDir),
	}
}

// UserConfigFile returns the location of the configuration file. It
// honours XDG_CONFIG_HOME and falls back to ~/.config.
func UserConfigFile(home string) string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" || !filepath.IsAbs(base) {
		base = filepath.Join(home, userConfigDir)
	}
	return filepath.Join(base, configSubdir, configFile)
}
