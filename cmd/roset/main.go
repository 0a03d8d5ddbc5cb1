package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	rosetinternal "github.com/chikaku/roset/internal/roset"
)

var Version = "dev"

var (
	bFlag = flag.String("b", "", "comma-separated build tags")
	tFlag = flag.Bool("t", false, "include tests")
	oFlag = flag.String("o", "roset_gen.go", "output file name")
	cFlag = flag.String("c", "auto", "colorize (auto|always|never)")
)

func init() {
	rosetinternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch *cFlag {
	case "auto":
		color.NoColor = !isatty()
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	outs, err := rosetinternal.Main(context.Background(), wd, os.Environ(), *bFlag, *tFlag, *oFlag, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, colorize(err.Error()))
		os.Exit(1)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var rePos = regexp.MustCompile(`(?m)^[^\s:]+(?::\d+){2}:`)

// colorize highlights the source positions in the error report.
func colorize(message string) string {
	bold := color.New(color.FgRed, color.Bold)
	return rePos.ReplaceAllStringFunc(message, func(pos string) string {
		return bold.Sprint(pos)
	})
}
