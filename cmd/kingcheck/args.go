// args.go - Argument files and input file lists
package main

import (
	"bufio"
	"os"
	"strings"
)

// loadArgsFromFileIfSpecified expands a leading "-A file" into the
// arguments listed in that file, before flag parsing sees them.
func loadArgsFromFileIfSpecified(args []string) ([]string, error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var name string
		switch {
		case arg == "-A" || arg == "--A":
			if i+1 >= len(args) {
				return args, nil
			}
			name = args[i+1]
		case strings.HasPrefix(arg, "-A="):
			name = strings.TrimPrefix(arg, "-A=")
		default:
			continue
		}

		loaded, err := loadArgsFile(name)
		if err != nil {
			return nil, err
		}
		skip := 1
		if arg == "-A" || arg == "--A" {
			skip = 2
		}
		expanded := make([]string, 0, len(args)+len(loaded))
		expanded = append(expanded, args[:i]...)
		expanded = append(expanded, loaded...)
		expanded = append(expanded, args[i+skip:]...)
		return expanded, nil
	}
	return args, nil
}

// loadArgsFile reads command-line arguments from a file. Blank lines and
// lines starting with # are ignored; quotes group words into one argument.
func loadArgsFile(name string) ([]string, error) {
	var args []string
	err := scanLines(name, func(line string) {
		args = append(args, splitArgsLine(line)...)
	})
	return args, err
}

// loadFileList reads input file names, one per line. Blank lines and
// lines starting with # are ignored.
func loadFileList(name string) ([]string, error) {
	var files []string
	err := scanLines(name, func(line string) {
		files = append(files, line)
	})
	return files, err
}

func scanLines(name string, fn func(line string)) error {
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}
	return scanner.Err()
}

// splitArgsLine splits a line on spaces and tabs, keeping single- or
// double-quoted text together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
