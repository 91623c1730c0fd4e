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

// Package system applies desktop wide themes through the native tools
// of the running desktop environment.
package system

import (
	"fmt"
	"os"
	"strings"
)

// Desktop identifies the desktop environment an adapter is built for.
type Desktop string

const (
	DesktopKDE Desktop = "kde"
	DesktopGTK Desktop = "gtk"
)

// UnsupportedEnvironmentError is returned for desktop environments no
// adapter exists for.
type UnsupportedEnvironmentError struct {
	Desktop string
}

func (e *UnsupportedEnvironmentError) Error() string {
	return fmt.Sprintf("unsupported desktop environment %q", e.Desktop)
}

// Adapter is implemented by *Gnome and *KDE.
type Adapter interface {
	// Name is the user facing name of the capability.
	Name() string
	// Available reports whether the native tool can be used.
	Available() bool
	Enabled() bool
	SetEnabled(enabled bool)
	// Themes returns the identifiers used for light and dark mode.
	Themes() (light, dark string)
	SetThemes(light, dark string)
	// AvailableThemes maps theme identifiers to display names.
	AvailableThemes() map[string]string
	// SetTheme applies the given theme and returns the identifier the
	// tool reported as applied.
	SetTheme(theme string) (string, error)
	// SetMode applies the light or dark theme and reports success.
	SetMode(dark bool) bool

	adapter()
}

// System forwards to the adapter matching the desktop environment it
// was created for.
type System struct {
	Adapter

	desktop Desktop
}

// New returns a System for the given desktop environment.
func New(desktop Desktop, env Environment) (*System, error) {
	var a Adapter
	switch desktop {
	case DesktopKDE:
		a = NewKDE(env)
	case DesktopGTK:
		a = NewGnome(env)
	default:
		return nil, &UnsupportedEnvironmentError{Desktop: string(desktop)}
	}
	return &System{Adapter: a, desktop: desktop}, nil
}

// Desktop returns the desktop environment s was created for.
func (s *System) Desktop() Desktop {
	return s.desktop
}

var desktopAliases = map[string]Desktop{
	"kde":            DesktopKDE,
	"plasma":         DesktopKDE,
	"plasmawayland":  DesktopKDE,
	"gnome":          DesktopGTK,
	"gnome-classic":  DesktopGTK,
	"unity":          DesktopGTK,
	"budgie":         DesktopGTK,
	"budgie-desktop": DesktopGTK,
	"cinnamon":       DesktopGTK,
	"x-cinnamon":     DesktopGTK,
	"ubuntu":         DesktopGTK,
	"pop":            DesktopGTK,
	"zorin":          DesktopGTK,
}

func lookupDesktop(raw string) (Desktop, bool) {
	// XDG_CURRENT_DESKTOP is a colon separated list, e.g. "ubuntu:GNOME"
	for _, name := range strings.Split(raw, ":") {
		name = strings.ToLower(strings.TrimSpace(name))
		if desktop, ok := desktopAliases[name]; ok {
			return desktop, true
		}
	}
	return "", false
}

// DetectDesktop guesses the desktop environment from
// XDG_CURRENT_DESKTOP, falling back to DESKTOP_SESSION.
func DetectDesktop() (Desktop, error) {
	current := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktop, ok := lookupDesktop(current); ok {
		return desktop, nil
	}
	session := os.Getenv("DESKTOP_SESSION")
	if desktop, ok := lookupDesktop(session); ok {
		return desktop, nil
	}
	raw := current
	if raw == "" {
		raw = session
	}
	return "", &UnsupportedEnvironmentError{Desktop: raw}
}

// Refresh drops any theme names the adapter has cached.
func (s *System) Refresh() {
	if r, ok := s.Adapter.(interface{ Refresh() }); ok {
		r.Refresh()
	}
}
