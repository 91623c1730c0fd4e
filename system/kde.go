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
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/yinyang/systheme/logger"
	"github.com/yinyang/systheme/osutil"
	"github.com/yinyang/systheme/plugin"
)

const (
	lookAndFeelTool = "lookandfeeltool"

	kdeThemeLight = "org.kde.breeze.desktop"
	kdeThemeDark  = "org.kde.breezedark.desktop"
)

// themeCache is either empty or populated, in which case it is never
// scanned again until dropped.
type themeCache struct {
	names map[string]string
}

func (tc *themeCache) populated() bool {
	return len(tc.names) > 0
}

// KDE sets the Plasma global theme (look-and-feel package).
type KDE struct {
	*plugin.Commandline

	env   Environment
	cache themeCache
}

// NewKDE returns an adapter driving lookandfeeltool.
func NewKDE(env Environment) *KDE {
	k := &KDE{
		Commandline: plugin.NewCommandline([]string{lookAndFeelTool, "-a", plugin.ThemePlaceholder}),
		env:         env,
	}
	k.SetThemes(kdeThemeLight, kdeThemeDark)
	return k
}

func (*KDE) adapter() {}

func (*KDE) Name() string {
	return "System"
}

// Available reports whether lookandfeeltool is installed.
func (k *KDE) Available() bool {
	return osutil.ExecutableExists(k.Command()[0])
}

// SetMode applies the theme configured for the given mode. The theme is
// applied twice and both runs need to succeed, as lookandfeeltool does
// not always apply everything on the first run.
func (k *KDE) SetMode(dark bool) bool {
	// lookandfeeltool misbehaves when called with the plugin disabled,
	// see https://bugs.kde.org/show_bug.cgi?id=446074
	if !k.Enabled() {
		return false
	}

	theme := k.ThemeFor(dark)
	for i := 0; i < 2; i++ {
		applied, err := k.SetTheme(theme)
		if err != nil {
			logger.Debugf("%v", err)
			return false
		}
		if applied != theme {
			logger.Debugf("cannot set theme %q: %q was applied instead", theme, applied)
			return false
		}
	}
	return true
}

// AvailableThemes maps the installed look-and-feel packages to their
// display names. The result is computed once and then reused.
func (k *KDE) AvailableThemes() map[string]string {
	if k.cache.populated() {
		return k.cache.names
	}

	ids, err := listLookAndFeel()
	if err != nil {
		logger.Debugf("%v", err)
		return map[string]string{}
	}

	names := make(map[string]string, len(ids))
	for _, id := range ids {
		names[id] = resolveThemeName(id, k.env)
	}
	k.cache.names = names
	return names
}

// Refresh drops the cached theme names, the next call to
// AvailableThemes scans the system again.
func (k *KDE) Refresh() {
	k.cache = themeCache{}
}

// listLookAndFeel returns the sorted identifiers of the installed
// look-and-feel packages.
func listLookAndFeel() ([]string, error) {
	output, err := exec.Command(lookAndFeelTool, "-l").Output()
	if err != nil {
		var stderr []byte
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = exitErr.Stderr
		}
		return nil, fmt.Errorf("cannot list look-and-feel packages: %v", osutil.OutputErr(stderr, err))
	}

	var ids []string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		if id := strings.TrimSpace(scanner.Text()); id != "" {
			ids = append(ids, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot list look-and-feel packages: %v", err)
	}
	sort.Strings(ids)
	return ids, nil
}
