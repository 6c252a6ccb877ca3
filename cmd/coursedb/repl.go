package main

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/coursedb/dberr"
	"github.com/gostonefire/coursedb/internal/file"
	"github.com/urfave/cli/v2"
	"strings"
)

const replHelp = `commands:
  add ID CRN CREDITS ROOM INSTRUCTOR   add or update a course
  get CRN...                           print courses
  load FILE...                         bulk load files
  show                                 print every course
  stat                                 print table statistics
  help                                 print this help
  exit | quit                          leave`

func (S *session) repl(c *cli.Context) error {
	w := c.App.Writer
	scanner := bufio.NewScanner(c.App.Reader)

	_, _ = fmt.Fprintf(w, "coursedb, table size %d. Type 'help' for commands.\n", S.info.TableSize)

	for {
		_, _ = fmt.Fprint(w, "coursedb> ")
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(w)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(input, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(cmd) {
		case "exit", "quit":
			return nil
		case "help":
			_, _ = fmt.Fprintln(w, replHelp)
		case "add":
			fields, err := file.LineToFields(0, rest)
			if err != nil {
				_, _ = fmt.Fprintln(w, "usage: add ID CRN CREDITS ROOM INSTRUCTOR")
				continue
			}
			S.store.Add(fields.ID, fields.CRN, fields.Credits, fields.Room, fields.Instructor)
		case "get":
			for _, arg := range strings.Fields(rest) {
				printCourse(w, S.store, arg)
			}
		case "load":
			for _, name := range strings.Fields(rest) {
				result, err := S.store.ReadFile(name)
				if errors.Is(err, dberr.SourceMissing{}) {
					_, _ = fmt.Fprintf(w, "file not found: %s\n", name)
					continue
				}
				if err != nil {
					_, _ = fmt.Fprintf(w, "error: %v\n", err)
					continue
				}
				_, _ = fmt.Fprintf(w, "%s: %d added, %d skipped\n", name, result.Added, result.Skipped)
			}
		case "show":
			printAll(w, S.store)
		case "stat":
			printStat(w, S.store)
		default:
			_, _ = fmt.Fprintf(w, "unknown command %q, type 'help' for commands\n", cmd)
		}
	}
}
