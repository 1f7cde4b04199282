// Public domain.

// Package scanprog implements the cwscan command.
package scanprog

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"

	"github.com/astrophysicsvivien/cwscan/doppler"
	"github.com/astrophysicsvivien/cwscan/ephem"
	"github.com/astrophysicsvivien/cwscan/metric"
	"github.com/astrophysicsvivien/cwscan/scan"
	"github.com/astrophysicsvivien/cwscan/sky"
)

const versionString = "cwscan version 0.3 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	cl := parseCommandLine()
	p, opt := readConfig(cl.fnConfig)

	sc, err := scan.New(p)
	if err != nil {
		exit.Log(err)
	}

	if opt.headings {
		fmt.Println(versionString)
		fmt.Printf("%-14s %-14s %13s", "RA", "Dec", "f0")
		for s := 1; s < doppler.MaxSpins; s++ {
			fmt.Printf(" %13s", fmt.Sprintf("f%ddot", s))
		}
		fmt.Println()
	}

	// the origin template is current before the first advance
	for n := 0; ; n++ {
		t, err := sc.Current(opt.sys)
		if err != nil {
			exit.Log(err)
		}
		printTemplate(t)
		more, err := sc.Advance()
		if err != nil {
			exit.Log(err)
		}
		if !more {
			if opt.headings {
				fmt.Println(n+1, "templates.")
			}
			return
		}
	}
}

func printTemplate(t scan.Template) {
	fmt.Printf("%-14v %-14v", sexa.FmtRA(t.Pos.RA), sexa.FmtAngle(t.Pos.Dec))
	for _, f := range t.Fkdot {
		fmt.Printf(" %13.6g", f)
	}
	fmt.Println()
}

type commandLine struct {
	fnConfig string
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.fnConfig, "c", "", "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: cwscan -c <config-file>    list templates covering the configured region
       cwscan -h                  display help and quick reference
       cwscan -v                  display version and copyright
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case cl.fnConfig == "":
		flag.Usage()
		os.Exit(1)
	}
	return &cl
}

type outputOptions struct {
	headings bool
	sys      sky.System
}

var rxKeyVal = regexp.MustCompile(`^[ \t]*(\w+)[ \t]*=[ \t]*(.+?)[ \t]*$`)

// rxDate matches YYYY-MM-DD with an optional fractional day.
var rxDate = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2}(?:\.\d*)?)$`)

// parseEpoch accepts a modified Julian date or a Gregorian calendar date.
func parseEpoch(s string) (float64, error) {
	if m := rxDate.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return 0, err
		}
		return ephem.MJDFromCalendar(y, mo, d), nil
	}
	return strconv.ParseFloat(s, 64)
}

func readConfig(fn string) (p scan.Params, opt outputOptions) {
	f, err := os.Open(fn)
	if err != nil {
		exit.Log(err)
	}
	defer f.Close()

	// defaults
	p.Metric = metric.Flat
	p.Mismatch = .02
	opt.headings = true
	opt.sys = sky.Equatorial

	setFloat := func(dst *float64, val, key string) {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			exit.Log(fmt.Sprintf("%s: %v", key, err))
		}
		*dst = v
	}
	setEpoch := func(dst *float64, val, key string) {
		v, err := parseEpoch(val)
		if err != nil {
			exit.Log(fmt.Sprintf("%s: %v", key, err))
		}
		*dst = v
	}

	for lr := bufio.NewReader(f); ; {
		l, isPre, err := lr.ReadLine()
		switch {
		case err == io.EOF:
			p.Spins.RefMJD = p.RefMJD
			return
		case err != nil:
			exit.Log(err)
		case isPre:
			exit.Log("Unexpected long line in config file.")
		case len(l) == 0:
			continue
		case l[0] == '#':
			continue
		}
		ls := string(l)
		switch ls {
		case "headings":
			opt.headings = true
			continue
		case "noheadings":
			opt.headings = false
			continue
		case "equatorial":
			opt.sys = sky.Equatorial
			continue
		case "ecliptic":
			opt.sys = sky.Ecliptic
			continue
		}
		kv := rxKeyVal.FindStringSubmatch(ls)
		if kv == nil {
			exit.Log("Unrecognized line in config file: " + ls)
		}
		key, val := kv[1], kv[2]
		switch key {
		case "skyRegion":
			p.Region = val
		case "refTime":
			setEpoch(&p.RefMJD, val, key)
		case "startTime":
			setEpoch(&p.StartMJD, val, key)
		case "duration":
			setFloat(&p.Span, val, key)
		case "mismatch":
			setFloat(&p.Mismatch, val, key)
		default:
			s, band, ok := spinKey(key)
			if !ok {
				exit.Log("Unrecognized config file key: " + key)
			}
			if band {
				setFloat(&p.Spins.Band[s], val, key)
			} else {
				setFloat(&p.Spins.Lower[s], val, key)
			}
		}
	}
}

// spinKey recognizes f0, f0Band, f1dot, f1dotBand, ... f3dotBand.
func spinKey(key string) (order int, band, ok bool) {
	band = strings.HasSuffix(key, "Band")
	key = strings.TrimSuffix(key, "Band")
	switch key {
	case "f0":
		return 0, band, true
	case "f1dot":
		return 1, band, true
	case "f2dot":
		return 2, band, true
	case "f3dot":
		return 3, band, true
	}
	return 0, false, false
}

func printHelp() {
	fmt.Println(`
Cwscan enumerates the template grid covering a region of pulsar Doppler
parameter space: a sky patch given as a polygon of (α,δ) vertices plus a box
in frequency and spindowns.  Templates are placed on an A* covering lattice
scaled so no signal in the region is more than the configured mismatch away
from its nearest template.  Output is one template per line.

Config file keys:
   skyRegion  = (α1,δ1), (α2,δ2), ...   equatorial radians
   refTime    = MJD or YYYY-MM-DD
   startTime  = MJD or YYYY-MM-DD
   duration   = seconds
   f0         = Hz           f0Band    = Hz
   f1dot      = Hz/s         f1dotBand = Hz/s
   f2dot      = Hz/s^2       f2dotBand = Hz/s^2
   f3dot      = Hz/s^3       f3dotBand = Hz/s^3
   mismatch   = maximum squared metric distance to a template
   headings / noheadings
   equatorial / ecliptic     output sky coordinate system`)
}
