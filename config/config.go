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

// Package config reads the settings of the command line tool.
//
// The file is in ini format:
//
//	[system]
//	desktop = kde
//	enabled = true
//	theme_light = org.kde.breeze.desktop
//	theme_dark = org.kde.breezedark.desktop
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mvo5/goconfigparser"

	"github.com/yinyang/systheme/osutil"
)

const section = "system"

// Config holds the settings of the system theme plugin. Empty theme
// fields mean the adapter defaults are used.
type Config struct {
	Desktop    string
	Enabled    bool
	ThemeLight string
	ThemeDark  string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Enabled: true}
}

// Load reads the configuration from path. A missing file is not an
// error and gives Default().
func Load(path string) (*Config, error) {
	if !osutil.FileExists(path) {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration: %v", err)
	}
	return Parse(string(data))
}

// Parse reads the configuration from its textual form.
func Parse(content string) (*Config, error) {
	cfg := goconfigparser.New()
	if err := cfg.ReadString(content); err != nil {
		return nil, fmt.Errorf("cannot parse configuration: %v", err)
	}

	conf := Default()
	conf.Desktop = get(cfg, "desktop")
	conf.ThemeLight = get(cfg, "theme_light")
	conf.ThemeDark = get(cfg, "theme_dark")
	if v := get(cfg, "enabled"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("cannot parse configuration: invalid value %q for enabled", v)
		}
		conf.Enabled = enabled
	}
	return conf, nil
}

// get returns the trimmed value of option, or "" if it is not set.
func get(cfg *goconfigparser.ConfigParser, option string) string {
	v, err := cfg.Get(section, option)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}
