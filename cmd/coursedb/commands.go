package main

import (
	"fmt"
	"github.com/gostonefire/coursedb"
	"github.com/urfave/cli/v2"
	"io"
	"strconv"
)

func (S *session) show(c *cli.Context) (err error) {
	if err = S.loadFiles(c.Args().Slice()); err != nil {
		return
	}

	printAll(c.App.Writer, S.store)

	return
}

func (S *session) get(c *cli.Context) (err error) {
	args := c.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("usage: get FILE CRN...")
	}

	if err = S.loadFiles(args[:1]); err != nil {
		return
	}

	var missing int
	for _, arg := range args[1:] {
		if !printCourse(c.App.Writer, S.store, arg) {
			missing++
		}
	}
	if missing > 0 {
		err = fmt.Errorf("%d of %d courses not found", missing, len(args)-1)
	}

	return
}

func (S *session) stat(c *cli.Context) (err error) {
	if err = S.loadFiles(c.Args().Slice()); err != nil {
		return
	}

	printStat(c.App.Writer, S.store)

	return
}

func printAll(w io.Writer, store *coursedb.Store) {
	for _, s := range store.ShowAll() {
		_, _ = fmt.Fprintln(w, s)
	}
}

// printCourse - Prints the course with the CRN given as text, returns false if it could not be printed
func printCourse(w io.Writer, store *coursedb.Store, arg string) bool {
	crn, err := strconv.Atoi(arg)
	if err != nil {
		_, _ = fmt.Fprintf(w, "invalid CRN %q\n", arg)
		return false
	}

	c, found := store.Get(crn)
	if !found {
		_, _ = fmt.Fprintf(w, "CRN %d not found\n", crn)
		return false
	}

	_, _ = fmt.Fprintln(w, c.String())

	return true
}

func printStat(w io.Writer, store *coursedb.Store) {
	info := store.Info()
	stat := store.Stat(false)

	_, _ = fmt.Fprintf(w, "table size:    %d\n", info.TableSize)
	_, _ = fmt.Fprintf(w, "records:       %d\n", stat.Records)
	_, _ = fmt.Fprintf(w, "used buckets:  %d\n", stat.UsedBuckets)
	_, _ = fmt.Fprintf(w, "longest chain: %d\n", stat.LongestChain)
	_, _ = fmt.Fprintf(w, "load:          %.2f\n", float64(stat.Records)/float64(info.TableSize))
}
