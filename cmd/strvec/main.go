// strvec - vectorized string matching over line input
//
// Reads lines from stdin (or files), treats them as a string vector,
// and applies one pattern operation across all of them.
// Uses manual argument parsing so flags can be glued to their values
// (-j4, -ra style).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kolkov/strvec"
)

var version = "dev"

const (
	shortUsage = "usage: strvec [-l] [-i] [-j N] [-r repl] op pattern [file ...]"
	longUsage  = `Operations:
  detect            print true/false/NA per line
  count             print the number of matches per line
  locate            print start:end of the first match per line, or -
  extract           print the first match per line, NA when none
  extract-all       print all matches per line, tab separated
  replace           replace the first match (needs -r)
  replace-all       replace all matches (needs -r)
  split             split each line, tokens tab separated
  highlight         echo lines with matches emphasized

Arguments:
  -l                treat the pattern as literal text
  -i                case-insensitive matching
  -r replacement    replacement text for replace/replace-all
  -j N              use N parallel workers (default: 1 = sequential)

Other:
  -h, --help        show this help message
  -version          show strvec version and exit
`
)

func main() {
	literal := false
	fold := false
	repl := ""
	workers := 1

	var i int
	for i = 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-l":
			literal = true
		case "-i":
			fold = true
		case "-r":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -r")
			}
			i++
			repl = os.Args[i]
		case "-j":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -j")
			}
			i++
			n, err := strconv.Atoi(os.Args[i])
			if err != nil || n < 1 {
				errorExitf("invalid number of workers: %s", os.Args[i])
			}
			workers = n
		case "-h", "--help":
			fmt.Printf("strvec %s\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("strvec version %s\n", version)
			os.Exit(0)
		default:
			switch {
			case strings.HasPrefix(arg, "-r"):
				repl = arg[2:]
			case strings.HasPrefix(arg, "-j"):
				n, err := strconv.Atoi(arg[2:])
				if err != nil || n < 1 {
					errorExitf("invalid number of workers: %s", arg[2:])
				}
				workers = n
			default:
				errorExitf("flag provided but not defined: %s", arg)
			}
		}
	}

	args := os.Args[i:]
	if len(args) < 2 {
		errorExitf(shortUsage)
	}
	op, patText := args[0], args[1]
	inputFiles := args[2:]

	pat := strvec.Pattern{Text: patText, Literal: literal, FoldCase: fold}
	pats := []strvec.Pattern{pat}
	cfg := &strvec.Config{Workers: workers}

	lines, err := readLines(inputFiles)
	if err != nil {
		errorExit(err)
	}
	v := strvec.Strings(lines...)

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	switch op {
	case "detect":
		out, _, err := strvec.Detect(v, pats, cfg)
		if err != nil {
			errorExit(err)
		}
		for _, b := range out {
			fmt.Fprintln(stdout, b)
		}
	case "count":
		out, _, err := strvec.Count(v, pats, cfg)
		if err != nil {
			errorExit(err)
		}
		for _, n := range out {
			fmt.Fprintln(stdout, n)
		}
	case "locate":
		out, _, err := strvec.LocateFirst(v, pats, cfg)
		if err != nil {
			errorExit(err)
		}
		for _, loc := range out {
			if loc.Found {
				fmt.Fprintf(stdout, "%d:%d\n", loc.Span.Start, loc.Span.End)
			} else {
				fmt.Fprintln(stdout, "-")
			}
		}
	case "extract":
		res, err := strvec.ExtractFirst(v, pats, cfg)
		if err != nil {
			errorExit(err)
		}
		printNested(stdout, res)
	case "extract-all":
		res, err := strvec.ExtractAll(v, pats, cfg)
		if err != nil {
			errorExit(err)
		}
		printNested(stdout, res)
	case "replace":
		res, err := strvec.ReplaceFirst(v, pats, strvec.Strings(repl), cfg)
		if err != nil {
			errorExit(err)
		}
		printNested(stdout, res)
	case "replace-all":
		res, err := strvec.ReplaceAll(v, pats, strvec.Strings(repl), cfg)
		if err != nil {
			errorExit(err)
		}
		printNested(stdout, res)
	case "split":
		res, err := strvec.Split(v, pats, cfg)
		if err != nil {
			errorExit(err)
		}
		printNested(stdout, res)
	case "highlight":
		m, err := strvec.Compile(pat)
		if err != nil {
			errorExit(err)
		}
		stdout.Flush()
		if err := strvec.NewHighlighter().Fprint(os.Stdout, v, m); err != nil {
			errorExit(err)
		}
	default:
		errorExitf("unknown operation: %s", op)
	}
}

// printNested renders one line per input element, values tab separated,
// missing values as NA.
func printNested(w io.Writer, res *strvec.Result) {
	for _, elem := range res.Nested() {
		parts := make([]string, len(elem))
		for i, v := range elem {
			if v.IsNA() {
				parts[i] = "NA"
			} else {
				parts[i] = v.Text()
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "\t"))
	}
}

// readLines gathers the input vector from files or stdin.
func readLines(files []string) ([]string, error) {
	var readers []io.Reader
	if len(files) == 0 {
		readers = append(readers, os.Stdin)
	} else {
		for _, f := range files {
			if f == "-" {
				readers = append(readers, os.Stdin)
				continue
			}
			file, err := os.Open(f)
			if err != nil {
				return nil, fmt.Errorf("cannot open file %s: %v", f, err)
			}
			defer file.Close()
			readers = append(readers, file)
		}
	}

	var lines []string
	scanner := bufio.NewScanner(io.MultiReader(readers...))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "strvec: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "strvec: %v\n", err)
	os.Exit(1)
}
