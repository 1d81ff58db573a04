package commands

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/wshell/wsh/core/vos"
)

var colorBoldBlue = color.New(color.FgBlue, color.Bold)

// Ls implements a trimmed down UNIX ls command.
func Ls(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "ls [OPTION]... [FILE]...",
		Short: "List information about the FILEs (the current directory by default).",
	}

	opts := cmd.Flags()
	listAll := opts.Bool('a', "don't ignore entries starting with .")
	longListing := opts.Bool('l', "use a long listing format")
	colorize := opts.EnumLong("color", rune(0),
		[]string{"always", "auto", "never"}, "auto",
		"colorize the output (always|auto|never)")

	return cmd.Run(virtOS, func() int {
		directoriesToList := opts.Args()
		if len(directoriesToList) == 0 {
			directoriesToList = append(directoriesToList, ".")
		}
		sort.Strings(directoriesToList)

		shouldColor := *colorize == "always" ||
			(*colorize == "auto" && virtOS.GetPTY().IsPTY)
		display := func(name string, isDir bool) string {
			if isDir && shouldColor {
				return colorBoldBlue.Sprint(name)
			}
			return name
		}

		showDirectoryNames := len(directoriesToList) > 1
		exitCode := 0

		for _, directory := range directoriesToList {
			file, err := virtOS.Open(directory)
			if err != nil {
				fmt.Fprintf(virtOS.Stderr(), "ls: %s: no such file or directory\n", directory)
				exitCode = 1
				continue
			}

			infos, err := file.Readdir(-1)
			file.Close()
			if err != nil {
				fmt.Fprintf(virtOS.Stderr(), "ls: %s: %v\n", directory, err)
				exitCode = 1
				continue
			}

			sort.Slice(infos, func(i, j int) bool {
				return infos[i].Name() < infos[j].Name()
			})

			if showDirectoryNames {
				fmt.Fprintf(virtOS.Stdout(), "%s:\n", directory)
			}

			if *longListing {
				tw := tabwriter.NewWriter(virtOS.Stdout(), 2, 2, 1, ' ', 0)
				for _, info := range infos {
					if !*listAll && strings.HasPrefix(info.Name(), ".") {
						continue
					}
					fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
						info.Mode().String(),
						info.Size(),
						info.ModTime().Format("Jan _2 15:04"),
						display(info.Name(), info.IsDir()))
				}
				tw.Flush()
			} else {
				var names []string
				for _, info := range infos {
					if !*listAll && strings.HasPrefix(info.Name(), ".") {
						continue
					}
					names = append(names, display(info.Name(), info.IsDir()))
				}
				if len(names) > 0 {
					fmt.Fprintln(virtOS.Stdout(), strings.Join(names, "  "))
				}
			}
		}

		return exitCode
	})
}

var _ vos.ProcessFunc = Ls

func init() {
	mustAddCmd("ls", "List directory contents.", Ls)
}
