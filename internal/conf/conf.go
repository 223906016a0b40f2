// conf.go -- config file processing.
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package conf

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"path"
	"path/filepath"

	L "github.com/opencoff/go-logger"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v2"

	"github.com/James-Richardson/i2p.i2p/internal/access"
)

// List of config entries
type Conf struct {
	Logging  string        `yaml:"log"`
	LogLevel string        `yaml:"loglevel"`
	ConfDir  string        `yaml:"config-dir"`
	Filters  []*FilterConf `yaml:"filters"`
}

// FilterConf names one access filter definition file
type FilterConf struct {
	Name       string `yaml:"name"`
	Definition string `yaml:"definition"`

	// refuse to read a definition that is group/world writable
	Safe bool `yaml:"safe"`
}

// Parse config file in YAML format and return
func ReadYAML(fn string) (*Conf, error) {
	yml, err := ioutil.ReadFile(fn)
	if err != nil {
		return nil, fmt.Errorf("can't read config file %s: %w", fn, err)
	}

	var cfg Conf
	err = yaml.Unmarshal(yml, &cfg)
	if err != nil {
		return nil, fmt.Errorf("can't parse config file %s: %w", fn, err)
	}

	if len(cfg.ConfDir) == 0 {
		cfg.ConfDir = filepath.Dir(fn)
	}

	if err = validate(&cfg); err != nil {
		return nil, err
	}
	return Defaults(&cfg), nil
}

// FromFiles returns a config with one unchecked filter per definition
// file; each filter is named by its file name.
func FromFiles(fv []string) *Conf {
	c := &Conf{}
	for _, fn := range fv {
		c.Filters = append(c.Filters, &FilterConf{
			Name:       fn,
			Definition: fn,
		})
	}
	return Defaults(c)
}

// Setup sane defaults if needed
func Defaults(c *Conf) *Conf {
	if len(c.LogLevel) == 0 {
		c.LogLevel = "INFO"
	}

	if len(c.Logging) == 0 {
		c.Logging = "SYSLOG"
	}

	if len(c.ConfDir) == 0 {
		c.ConfDir = "."
	}
	return c
}

// basic sanity check on the parsed config file
func validate(c *Conf) error {
	seen := make(map[string]bool)
	for i, f := range c.Filters {
		if len(f.Name) == 0 {
			return fmt.Errorf("filter %d has no name", i+1)
		}
		if seen[f.Name] {
			return fmt.Errorf("%s: duplicate filter name", f.Name)
		}
		seen[f.Name] = true

		if len(f.Definition) == 0 {
			return fmt.Errorf("%s: missing definition file", f.Name)
		}
	}
	return nil
}

// Load parses every filter definition named in the config. Every filter
// is attempted; the returned error combines all the failures.
func (c *Conf) Load(log *L.Logger) (map[string]*access.FilterDefinition, error) {
	var errs error

	defs := make(map[string]*access.FilterDefinition)
	for _, f := range c.Filters {
		d, err := c.loadFilter(f)
		if err != nil {
			log.Warn("%s: %s", f.Name, err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", f.Name, err))
			continue
		}

		log.Info("%s: loaded %s: default %s, %d elements, %d recorders",
			f.Name, c.Path(f.Definition), d.Default(), len(d.Elements()), len(d.Recorders()))
		defs[f.Name] = d
	}
	return defs, errs
}

func (c *Conf) loadFilter(f *FilterConf) (*access.FilterDefinition, error) {
	var d *access.FilterDefinition
	var err error

	fn := c.Path(f.Definition)
	if f.Safe {
		d, err = c.safeParse(f.Definition)
	} else {
		d, err = access.ParseFile(fn)
	}

	// read errors already carry the file name
	var de *access.DefinitionError
	if errors.As(err, &de) {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return d, err
}

func (c *Conf) safeParse(nm string) (*access.FilterDefinition, error) {
	fd, err := c.SafeOpenFile(nm)
	if err != nil {
		return nil, &access.ReadError{Name: c.Path(nm), Err: err}
	}
	defer fd.Close()

	return access.Parse(fd)
}

// turn relative paths to absolute
func (c *Conf) Path(nm string) string {
	if path.IsAbs(nm) {
		return nm
	}
	return path.Join(c.ConfDir, nm)
}

// Print config in human readable format
func (c *Conf) Dump(w io.Writer) {
	fmt.Fprintf(w, "config: %d filters; config-dir %s\n", len(c.Filters), c.ConfDir)

	for _, f := range c.Filters {
		fmt.Fprintf(w, "filter %s from %s", f.Name, c.Path(f.Definition))
		if f.Safe {
			fmt.Fprintf(w, " (perms checked)")
		}
		fmt.Fprintf(w, "\n")
	}
}
