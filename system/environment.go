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
	"os/user"

	"github.com/yinyang/systheme/i18n"
)

// Environment is what the adapters need to know about the user session.
type Environment struct {
	// HomeDir is the home directory of the invoking user.
	HomeDir string
	// Locale selects localized theme names.
	Locale i18n.Locale
}

var userCurrent = user.Current

// CurrentEnvironment describes the session of the invoking user.
func CurrentEnvironment() (Environment, error) {
	home, err := homeDir()
	if err != nil {
		return Environment{}, err
	}
	return Environment{
		HomeDir: home,
		Locale:  i18n.CurrentLocale(),
	}, nil
}

func homeDir() (string, error) {
	u, err := userCurrent()
	if err == nil && u.HomeDir != "" {
		return u.HomeDir, nil
	}
	// the user database may not know about us, e.g. in containers
	home, herr := os.UserHomeDir()
	if herr != nil {
		if err == nil {
			err = herr
		}
		return "", fmt.Errorf("cannot determine home directory: %v", err)
	}
	return home, nil
}
