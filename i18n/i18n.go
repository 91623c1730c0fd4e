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

package i18n

import (
	"strings"

	"github.com/snapcore/go-gettext"
	"golang.org/x/text/language"

	"github.com/yinyang/systheme/dirs"
	"github.com/yinyang/systheme/osutil"
)

// TEXTDOMAIN is the message domain used by systheme; see dgettext(3)
// for more information.
var (
	TEXTDOMAIN   = "systheme"
	locale       gettext.Catalog
	translations gettext.Translations
)

func init() {
	bindTextDomain(TEXTDOMAIN, dirs.SystemLocaleDir)
	setLocale("")
}

func bindTextDomain(domain, dir string) {
	translations = gettext.NewTranslations(dir, domain, gettext.DefaultResolver)
}

func setLocale(loc string) {
	if loc == "" {
		loc = CurrentLocale().Name
	} else {
		loc = ParseLocale(loc).Name
	}
	locale = translations.Locale(loc)
}

// G is the shorthand for Gettext
func G(msgid string) string {
	return locale.Gettext(msgid)
}

// NG is the shorthand for NGettext
func NG(msgid string, msgidPlural string, n int) string {
	if n < 0 {
		n = -n
	}
	return locale.NGettext(msgid, msgidPlural, uint32(n))
}

// Locale describes the user interface locale, as needed to pick
// localized keys out of theme metadata.
type Locale struct {
	// Name is the full locale name, e.g. "de_DE".
	Name string
	// Language is the bare language code, e.g. "de".
	Language string
}

// CurrentLocale returns the locale of the process as configured in the
// environment, using the same precedence as setlocale(3).
func CurrentLocale() Locale {
	return ParseLocale(osutil.GetenvFirst("LC_ALL", "LC_MESSAGES", "LANG"))
}

// ParseLocale turns a POSIX locale string like "de_DE.UTF-8@euro" into
// a Locale. The "C" and "POSIX" locales give the zero Locale.
func ParseLocale(loc string) Locale {
	// de_DE.UTF-8, de_DE@euro all need to get simplified
	loc = strings.Split(loc, "@")[0]
	loc = strings.Split(loc, ".")[0]
	if loc == "" || loc == "C" || loc == "POSIX" {
		return Locale{}
	}

	lang := strings.ToLower(strings.SplitN(loc, "_", 2)[0])
	if tag, err := language.Parse(loc); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			lang = base.String()
		}
	}
	return Locale{Name: loc, Language: lang}
}

// IsZero reports whether no locale is configured.
func (l Locale) IsZero() bool {
	return l.Name == "" && l.Language == ""
}
