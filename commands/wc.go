package commands

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wshell/wsh/core/vos"
)

type tally struct {
	name  string
	lines int
	words int
	bytes int
	chars int
}

func tallyReader(name string, r io.Reader) (tally, error) {
	out := tally{name: name}

	data, err := io.ReadAll(r)
	if err != nil {
		return out, err
	}

	out.bytes = len(data)
	out.chars = utf8.RuneCount(data)
	out.lines = strings.Count(string(data), "\n")

	inWord := false
	for _, r := range string(data) {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			out.words++
			inWord = true
		}
	}

	return out, nil
}

func (t *tally) add(other tally) {
	t.lines += other.lines
	t.words += other.words
	t.bytes += other.bytes
	t.chars += other.chars
}

// Wc implements the POSIX command by the same name.
// https://pubs.opengroup.org/onlinepubs/009695399/utilities/wc.html
func Wc(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "wc [-c|-m] [-lw] [FILE...]",
		Short: "Write the number of newlines, words, and bytes in each input.",
	}

	opts := cmd.Flags()
	showLines := opts.Bool('l', "write the number of newlines in each file")
	showWords := opts.Bool('w', "write the number of words in each file")
	showBytes := opts.Bool('c', "write the number of bytes in each file")
	showChars := opts.Bool('m', "write the number of characters in each file")

	return cmd.RunE(virtOS, func() error {
		args := opts.Args()

		nonePicked := !(*showLines || *showWords || *showBytes || *showChars)

		display := func(t tally) {
			var fields []string
			if *showLines || nonePicked {
				fields = append(fields, fmt.Sprint(t.lines))
			}
			if *showWords || nonePicked {
				fields = append(fields, fmt.Sprint(t.words))
			}
			if *showBytes || nonePicked {
				fields = append(fields, fmt.Sprint(t.bytes))
			}
			if *showChars {
				fields = append(fields, fmt.Sprint(t.chars))
			}
			if t.name != "" {
				fields = append(fields, t.name)
			}
			fmt.Fprintln(virtOS.Stdout(), strings.Join(fields, " "))
		}

		if len(args) == 0 {
			t, err := tallyReader("", virtOS.Stdin())
			if err != nil {
				return err
			}
			display(t)
			return nil
		}

		total := tally{name: "total"}
		for _, name := range args {
			fd, err := virtOS.Open(name)
			if err != nil {
				return fmt.Errorf("%s: no such file or directory", name)
			}

			t, err := tallyReader(name, fd)
			fd.Close()
			if err != nil {
				return err
			}

			total.add(t)
			display(t)
		}

		if len(args) > 1 {
			display(total)
		}

		return nil
	})
}

var _ vos.ProcessFunc = Wc

func init() {
	mustAddCmd("wc", "Count newlines, words, and bytes.", Wc)
}
