package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"
	"unicode/utf8"

	"htmlchars-go/packages/htmlparser/src/core"

	"github.com/rs/zerolog/log"
)

var (
	errUsage        = errors.New("usage")
	errBadCodePoint = errors.New("bad code point")
)

type row struct {
	cp    rune
	class core.Class
}

// parseCodePoint accepts U+XXXX, 0xXX, a decimal number, EOF, or a single
// literal character.
func parseCodePoint(arg string) (rune, error) {
	if strings.EqualFold(arg, "EOF") {
		return core.CharEOF, nil
	}
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		return r, nil
	}
	s, base := arg, 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	n, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", errBadCodePoint, arg, err)
	}
	return rune(n), nil
}

func formatCodePoint(cp rune, upper bool) string {
	if cp == core.CharEOF {
		return "EOF"
	}
	if cp < 0 {
		return strconv.Itoa(int(cp))
	}
	if upper {
		return fmt.Sprintf("U+%04X", cp)
	}
	return fmt.Sprintf("U+%04x", cp)
}

func writeRows(w io.Writer, rows []row, upper bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE POINT\tCHAR\tCLASSES\tLOWER")
	for _, r := range rows {
		char := ""
		if unicode.IsPrint(r.cp) && r.cp != core.CharSPACE {
			char = string(r.cp)
		}
		lower := ""
		if core.IsUpperLetter(r.cp) {
			lower = formatCodePoint(core.ToLowerCodePoint(r.cp), upper)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", formatCodePoint(r.cp, upper), char, r.class, lower)
	}
	return tw.Flush()
}

func classifyArgs(args []string) ([]row, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: classify needs at least one code point", errUsage)
	}
	rows := make([]row, 0, len(args))
	var failed error
	for _, arg := range args {
		cp, err := parseCodePoint(arg)
		if err != nil {
			log.Error().Err(err).Str("arg", arg).Msg("skipping argument")
			failed = errors.Join(failed, err)
			continue
		}
		rows = append(rows, row{cp: cp, class: core.Classify(cp)})
	}
	return rows, failed
}

// scan classifies every rune of r, then EOF. Invalid UTF-8 decodes to
// U+FFFD.
func scan(r io.Reader) ([]row, error) {
	br := bufio.NewReader(r)
	var rows []row
	invalid := 0
	for {
		cp, size, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if cp == utf8.RuneError && size == 1 {
			invalid++
			cp = core.CharNullReplacement
		}
		rows = append(rows, row{cp: cp, class: core.Classify(cp)})
	}
	log.Info().Int("runes", len(rows)).Int("invalid", invalid).Msg("scan complete")
	rows = append(rows, row{cp: core.CharEOF, class: core.Classify(core.CharEOF)})
	return rows, nil
}

func asciiTable() []row {
	rows := make([]row, 0, 0x80)
	for cp := rune(0); cp < 0x80; cp++ {
		rows = append(rows, row{cp: cp, class: core.Classify(cp)})
	}
	return rows
}

// run executes one command and writes its report to out.
func run(out io.Writer, in io.Reader, cmd string, args []string, upper bool) error {
	log.Debug().Str("command", cmd).Strs("args", args).Msg("running")
	switch cmd {
	case "classify":
		rows, err := classifyArgs(args)
		if werr := writeRows(out, rows, upper); werr != nil {
			return werr
		}
		return err
	case "scan":
		src := in
		if len(args) > 0 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()
			src = f
		}
		rows, err := scan(src)
		if err != nil {
			return err
		}
		return writeRows(out, rows, upper)
	case "table":
		return writeRows(out, asciiTable(), upper)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}
