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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/yinyang/systheme/config"
	"github.com/yinyang/systheme/dirs"
	"github.com/yinyang/systheme/i18n"
	"github.com/yinyang/systheme/logger"
	"github.com/yinyang/systheme/system"
)

// Standard streams, redirected for testing.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

type options struct {
	Desktop string `long:"desktop"`
	Config  string `long:"config"`
}

var optionsData options

// ErrExtraArgs is returned  if extra arguments to a command are found
var ErrExtraArgs = errors.New(i18n.G("too many arguments for command"))

// cmdInfo holds information needed to call parser.AddCommand(...).
type cmdInfo struct {
	name, shortHelp, longHelp string
	builder                   func() flags.Commander
	optDescs                  map[string]string
}

// commands holds information about all commands.
var commands []*cmdInfo

// addCommand replaces parser.addCommand() in a way that is compatible with
// re-constructing a pristine parser.
func addCommand(name, shortHelp, longHelp string, builder func() flags.Commander, optDescs map[string]string) *cmdInfo {
	info := &cmdInfo{
		name:      name,
		shortHelp: shortHelp,
		longHelp:  longHelp,
		builder:   builder,
		optDescs:  optDescs,
	}
	commands = append(commands, info)
	return info
}

// Parser creates and populates a fresh parser.
// Since commands have local state a fresh parser is required to isolate tests
// from each other.
func Parser() *flags.Parser {
	optionsData = options{}
	parser := flags.NewParser(&optionsData, flags.HelpFlag|flags.PassDoubleDash|flags.PassAfterNonOption)
	parser.ShortDescription = i18n.G("Switch the desktop wide theme")
	parser.LongDescription = i18n.G(`
List and apply the global theme of the running desktop environment,
using the native tools of GNOME (gsettings) and KDE Plasma
(lookandfeeltool).
`)
	parser.FindOptionByLongName("desktop").Description = i18n.G("Desktop environment to use (kde or gtk), detected when unset")
	parser.FindOptionByLongName("config").Description = i18n.G("Use the given configuration file")

	for _, c := range commands {
		cmd, err := parser.AddCommand(c.name, c.shortHelp, strings.TrimSpace(c.longHelp), c.builder())
		if err != nil {
			logger.Panicf("cannot add command %q: %v", c.name, err)
		}
		for _, opt := range cmd.Options() {
			if desc, ok := c.optDescs[opt.LongName]; ok {
				opt.Description = desc
			}
		}
	}
	return parser
}

var systemCurrentEnvironment = system.CurrentEnvironment

// newSystem builds the adapter for the desktop selected on the command
// line, in the configuration or by detection, in that order.
func newSystem() (*system.System, error) {
	env, err := systemCurrentEnvironment()
	if err != nil {
		return nil, err
	}

	path := optionsData.Config
	if path == "" {
		path = dirs.UserConfigFile(env.HomeDir)
	}
	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	desktop := system.Desktop(optionsData.Desktop)
	if desktop == "" {
		desktop = system.Desktop(conf.Desktop)
	}
	if desktop == "" {
		desktop, err = system.DetectDesktop()
		if err != nil {
			return nil, err
		}
	}

	sys, err := system.New(desktop, env)
	if err != nil {
		return nil, err
	}
	sys.SetEnabled(conf.Enabled)
	light, dark := sys.Themes()
	if conf.ThemeLight != "" {
		light = conf.ThemeLight
	}
	if conf.ThemeDark != "" {
		dark = conf.ThemeDark
	}
	sys.SetThemes(light, dark)
	return sys, nil
}

func init() {
	err := logger.SimpleSetup()
	if err != nil {
		fmt.Fprintf(Stderr, i18n.G("WARNING: failed to activate logging: %v\n"), err)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(Stderr, i18n.G("error: %v\n"), err)
		os.Exit(1)
	}
}

// unknownCommand returns the command name quoted in a go-flags
// "Unknown command `foo'" message.
func unknownCommand(msg string) string {
	start := strings.IndexByte(msg, '`')
	if start < 0 {
		return msg
	}
	name := msg[start+1:]
	if end := strings.IndexByte(name, '\''); end >= 0 {
		name = name[:end]
	}
	return name
}

func run() error {
	parser := Parser()
	_, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok {
			if e.Type == flags.ErrHelp || e.Type == flags.ErrCommandRequired {
				parser.WriteHelp(Stdout)
				return nil
			}
			if e.Type == flags.ErrUnknownCommand {
				return fmt.Errorf(i18n.G(`unknown command %q, see "yinyang-system --help"`), unknownCommand(e.Message))
			}
		}
	}
	return err
}
