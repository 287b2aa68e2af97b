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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/mos6510/paths"
	"github.com/jetsetilly/mos6510/test"
)

func TestLocalResourcePath(t *testing.T) {
	dir := t.TempDir()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".mos6510", 0700))

	pth, err := paths.ResourcePath("scripts", "boot.lua")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mos6510", "scripts", "boot.lua"))

	// sub-path has been created
	_, err = os.Stat(filepath.Join(".mos6510", "scripts"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mos6510", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^memviz_cpu_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("memviz", "cpu")))

	re = regexp.MustCompile(`^trace_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("trace", " ")))
}
