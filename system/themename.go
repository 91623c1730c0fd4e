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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yinyang/systheme/dirs"
	"github.com/yinyang/systheme/i18n"
	"github.com/yinyang/systheme/logger"
)

const (
	metadataJSON    = "metadata.json"
	metadataDesktop = "metadata.desktop"

	legacyNameKey = "Name="
)

var osOpen = os.Open

// NoNameKeyError is returned when none of the candidate name keys is
// present in the metadata of a look-and-feel package.
type NoNameKeyError struct {
	Candidates []string
}

func (e *NoNameKeyError) Error() string {
	return fmt.Sprintf("cannot find any of %s in metadata", strings.Join(e.Candidates, ", "))
}

var errNoLegacyName = errors.New("no Name entry")

// NameKeys returns the localized name keys to look for, most specific
// first.
func NameKeys(loc i18n.Locale) []string {
	if loc.IsZero() {
		return []string{"Name"}
	}
	keys := make([]string, 0, 3)
	if loc.Name != "" {
		keys = append(keys, fmt.Sprintf("Name[%s]", loc.Name))
	}
	if loc.Language != "" && loc.Language != loc.Name {
		keys = append(keys, fmt.Sprintf("Name[%s]", loc.Language))
	}
	return append(keys, "Name")
}

// NameKey returns the first key of NameKeys(loc) present in the
// KPlugin section of a metadata.json file.
func NameKey(kplugin map[string]interface{}, loc i18n.Locale) (string, error) {
	keys := NameKeys(loc)
	for _, key := range keys {
		if _, ok := kplugin[key]; ok {
			return key, nil
		}
	}
	return "", &NoNameKeyError{Candidates: keys}
}

type lookAndFeelMetadata struct {
	KPlugin map[string]interface{} `json:"KPlugin"`
}

func readJSONName(path string, loc i18n.Locale) (string, error) {
	f, err := osOpen(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var meta lookAndFeelMetadata
	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		return "", fmt.Errorf("cannot decode %s: %v", path, err)
	}
	key, err := NameKey(meta.KPlugin, loc)
	if err != nil {
		return "", err
	}
	name, ok := meta.KPlugin[key].(string)
	if !ok {
		return "", fmt.Errorf("cannot use %s in %s: not a string", key, path)
	}
	return name, nil
}

// ReadLegacyName returns the value of the first line containing
// "Name=", which is everything after the first "=" of that line up to
// the newline. The value is not trimmed. It returns false if no line
// matches.
func ReadLegacyName(r io.Reader) (string, bool) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if strings.Contains(line, legacyNameKey) {
			line = strings.TrimSuffix(line, "\n")
			return line[strings.IndexByte(line, '=')+1:], true
		}
		if err != nil {
			return "", false
		}
	}
}

func readLegacyNameFile(path string) (string, error) {
	f, err := osOpen(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	name, ok := ReadLegacyName(f)
	if !ok {
		return "", fmt.Errorf("cannot read name from %s: %v", path, errNoLegacyName)
	}
	return name, nil
}

// resolveThemeName finds the display name of a look-and-feel package.
// The identifier itself is used when no metadata can be read.
func resolveThemeName(id string, env Environment) string {
	systemDir := filepath.Join(dirs.SystemLookAndFeelDir, id)

	name, err := readJSONName(filepath.Join(systemDir, metadataJSON), env.Locale)
	if err == nil {
		return name
	}
	logger.Debugf("cannot use %s of %q: %v", metadataJSON, id, err)

	lookups := []string{filepath.Join(systemDir, metadataDesktop)}
	if env.HomeDir != "" {
		lookups = append(lookups, filepath.Join(dirs.UserLookAndFeelDir(env.HomeDir), id, metadataDesktop))
	}
	for _, path := range lookups {
		name, err := readLegacyNameFile(path)
		if err == nil {
			return name
		}
		logger.Debugf("cannot use %s: %v", path, err)
	}

	return id
}
