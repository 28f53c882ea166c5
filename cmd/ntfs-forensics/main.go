package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/yamaru/ntfs-forensics/internal/pipeline"
	"github.com/yamaru/ntfs-forensics/internal/types"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		logfile string
		utc     int
		mft     string
		dbPath  string
		verbose bool
	)

	flag.StringVar(&logfile, "f", "", "path to the raw $LogFile (required)")
	flag.StringVar(&logfile, "logfile", "", "path to the raw $LogFile (required)")
	flag.IntVar(&utc, "t", 0, "UTC offset in hours applied to emitted timestamps (required)")
	flag.IntVar(&utc, "utc", 0, "UTC offset in hours applied to emitted timestamps (required)")
	flag.StringVar(&mft, "m", "", "path to the raw $MFT (optional)")
	flag.StringVar(&mft, "mft", "", "path to the raw $MFT (optional)")
	flag.StringVar(&dbPath, "db", "ntfs_forensics.db", "output SQLite database path")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Parse()

	if logfile == "" {
		fmt.Fprintln(os.Stderr, "Error: -f/--logfile is required")
		flag.Usage()
		return 1
	}
	if !flagWasSet("t") && !flagWasSet("utc") {
		fmt.Fprintln(os.Stderr, "Error: -t/--utc is required")
		flag.Usage()
		return 1
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	p, err := pipeline.New(dbPath, log)
	if err != nil {
		log.WithError(err).Error("failed to open output database")
		return 2
	}
	defer p.Close()

	if err := p.ParseLogFile(logfile); err != nil {
		return exitCodeFor(log, err)
	}

	if err := p.ReasonTimestomps(utc); err != nil {
		return exitCodeFor(log, err)
	}

	if mft != "" {
		if err := p.CrossCheckMFT(mft, utc); err != nil {
			return exitCodeFor(log, err)
		}
	}

	return 0
}

// flagWasSet reports whether name was explicitly passed on the command
// line, distinguishing "-t 0" from "not supplied at all" since 0 is a
// meaningful UTC offset.
func flagWasSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func exitCodeFor(log *logrus.Logger, err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidRestart):
		log.WithError(err).Error("not a valid NTFS log file")
		return 1
	case errors.Is(err, types.ErrStore):
		log.WithError(err).Error("persistent store failure")
		return 2
	default:
		log.WithError(err).Error("unreadable input")
		return 1
	}
}
