// safety.go -- safety checks on files and dirs
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package conf

import (
	"fmt"
	"os"
	"path"
)

// Safely open a filter definition named in the config-file
func (c *Conf) SafeOpenFile(fn string) (*os.File, error) {
	fn = c.Path(fn)
	fd, err := os.Open(fn)
	if err != nil {
		return nil, err
	}

	fi, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, err
	}

	if !fi.Mode().IsRegular() {
		fd.Close()
		return nil, fmt.Errorf("%s: not a regular file", fn)
	}

	if err = checkStat(fi, fn); err != nil {
		fd.Close()
		return nil, err
	}
	return fd, nil
}

// check this stat result, validate it and its parent.
// We walk all the way up to the root
func checkStat(fi os.FileInfo, nm string) error {
	if (fi.Mode() & 0022) != 0 {
		return fmt.Errorf("insecure perms on %s (group/world writable)", nm)
	}

	for {
		dir := path.Dir(nm)
		if dir == nm {
			break
		}
		fi, err := os.Stat(dir)
		if err != nil {
			return err
		}
		m := fi.Mode()
		if (m&0022) != 0 && (m&os.ModeSticky) == 0 {
			return fmt.Errorf("insecure perms on %s (group/world writable)", dir)
		}

		nm = dir
	}
	return nil
}
