// main.go -- main() for accessctl
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
//
// accessctl reads the access filter definitions of a tunnel config and
// validates them; unless asked to only check, it prints each parsed
// definition.

package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	L "github.com/opencoff/go-logger"
	flag "github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/James-Richardson/i2p.i2p/internal/access"
	"github.com/James-Richardson/i2p.i2p/internal/conf"
)

// This will be filled in by "build"
var RepoVersion string = "UNDEFINED"
var Buildtime string = "UNDEFINED"
var ProductVersion string = "UNDEFINED"

func main() {
	debugFlag := flag.BoolP("debug", "d", false, "Run in debug mode")
	verFlag := flag.BoolP("version", "v", false, "Show version info and quit")
	checkFlag := flag.BoolP("check", "n", false, "Only validate the definitions; don't print them")
	fileFlag := flag.BoolP("file", "f", false, "Arguments are definition files, not a config file")

	usage := fmt.Sprintf("%s [options] config-file\n       %s [options] -f definition-file [...]",
		os.Args[0], os.Args[0])

	flag.Usage = func() {
		fmt.Printf("accessctl - tunnel access filter definition checker\nUsage: %s\n", usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *verFlag {
		fmt.Printf("accessctl - %s [%s; %s]\n", ProductVersion, RepoVersion, Buildtime)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 {
		die("No config file!\nUsage: %s", usage)
	}

	var cfg *conf.Conf
	if *fileFlag {
		cfg = conf.FromFiles(args)
		cfg.Logging = "STDERR"
	} else {
		var err error

		cfgfile := args[0]
		cfg, err = conf.ReadYAML(cfgfile)
		if err != nil {
			die("Can't read config file %s: %s", cfgfile, err)
		}
	}

	prio, ok := L.ToPriority(cfg.LogLevel)
	if !ok {
		die("Invalid log-level %s", cfg.LogLevel)
	}

	// We want microsecond timestamps and debug logs to have short
	// filenames
	const logflags int = L.Ldate | L.Ltime | L.Lshortfile | L.Lmicroseconds
	var logf string = cfg.Logging

	if *debugFlag {
		prio = L.LOG_DEBUG
		logf = "STDOUT"
	}

	log, err := L.NewLogger(logf, prio, "accessctl", logflags)
	if err != nil {
		die("Can't create logger: %s", err)
	}

	log.Info("accessctl - %s [%s - built on %s] starting up (logging at %s)...",
		ProductVersion, RepoVersion, Buildtime, log.Prio())

	if *debugFlag {
		cfg.Dump(os.Stdout)
	}

	if len(cfg.Filters) == 0 {
		die("no filters in config file")
	}

	defs, err := cfg.Load(log)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			warn("%s", e)
		}
		log.Close()
		os.Exit(1)
	}

	if !*checkFlag {
		dump(os.Stdout, defs)
	}

	log.Info("%d filter definitions OK", len(defs))
	log.Close()
	os.Exit(0)
}

// print each definition in name order
func dump(w io.Writer, defs map[string]*access.FilterDefinition) {
	names := make([]string, 0, len(defs))
	for nm := range defs {
		names = append(names, nm)
	}
	sort.Strings(names)

	for _, nm := range names {
		fmt.Fprintf(w, "%s:\n", nm)
		defs[nm].Dump(w)
	}
}

// vim: ft=go:sw=8:ts=8:noexpandtab:tw=88:
