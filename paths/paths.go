// This file is part of mos6510.
//
// mos6510 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6510 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6510.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const localResourcePath = ".mos6510"
const configResourcePath = "mos6510"

// ResourcePath returns the path of the resource. The subPth argument is
// created if it does not exist. The file argument is only joined to the
// returned path and may be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0700); err != nil {
			return "", fmt.Errorf("paths: %w", err)
		}
	}

	return filepath.Join(pth, file), nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(localResourcePath); err == nil {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(cnf, configResourcePath), nil
}

// UniqueFilename creates a filename that should not collide with any
// existing file, assuming a functioning clock. The function does not check
// the filesystem.
//
// Format of returned string is:
//
//	prepend_label_YYYYMMDD_HHMMSS
//
// If label is empty the format is:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, label string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	label = strings.TrimSpace(label)
	if len(label) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, label, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
