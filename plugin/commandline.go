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

// Package plugin holds the building blocks shared by the theme
// adapters, most notably the command line template used to apply a
// theme through an external tool.
package plugin

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/yinyang/systheme/logger"
	"github.com/yinyang/systheme/osutil"
)

// ThemePlaceholder is substituted with the theme identifier in every
// token of a command template.
const ThemePlaceholder = "%t"

// Commandline applies themes by running a templated command.
type Commandline struct {
	command []string
	enabled bool

	// ThemeLight and ThemeDark are the identifiers used in light and
	// dark mode respectively.
	ThemeLight string
	ThemeDark  string
}

// NewCommandline returns an enabled Commandline running the given
// command template. One of the tokens is expected to contain
// ThemePlaceholder.
func NewCommandline(command []string) *Commandline {
	if len(command) == 0 {
		panic("internal error: empty command template")
	}
	return &Commandline{
		command: append([]string(nil), command...),
		enabled: true,
	}
}

// Command returns a copy of the command template.
func (p *Commandline) Command() []string {
	return append([]string(nil), p.command...)
}

// Enabled reports whether the plugin is switched on.
func (p *Commandline) Enabled() bool {
	return p.enabled
}

// SetEnabled switches the plugin on or off.
func (p *Commandline) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// ThemeFor returns the configured identifier for the given mode.
func (p *Commandline) ThemeFor(dark bool) string {
	if dark {
		return p.ThemeDark
	}
	return p.ThemeLight
}

// Themes returns the light and dark mode identifiers.
func (p *Commandline) Themes() (light, dark string) {
	return p.ThemeLight, p.ThemeDark
}

// SetThemes sets the light and dark mode identifiers.
func (p *Commandline) SetThemes(light, dark string) {
	p.ThemeLight = light
	p.ThemeDark = dark
}

// Expand returns the command template with the theme substituted.
func (p *Commandline) Expand(theme string) []string {
	args := make([]string, len(p.command))
	for i, tok := range p.command {
		args[i] = strings.ReplaceAll(tok, ThemePlaceholder, theme)
	}
	return args
}

// SetTheme runs the command template for the given theme. On success
// it returns the identifier the tool was asked to apply.
func (p *Commandline) SetTheme(theme string) (string, error) {
	args := p.Expand(theme)
	logger.Debugf("running %q", args)
	output, err := exec.Command(args[0], args[1:]...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("cannot set theme %q: %v", theme, osutil.OutputErr(output, err))
	}
	return theme, nil
}
