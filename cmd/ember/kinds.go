package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dshills/ember/internal/event"
)

var (
	header   = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	kindName = color.New(color.FgHiWhite).SprintFunc()
	catName  = color.New(color.FgYellow).SprintFunc()
	faint    = color.New(color.Faint).SprintFunc()
)

// printKinds writes a table of every event kind and its categories.
func printKinds(w io.Writer) {
	fmt.Fprintf(w, "%s  %s  %s\n", header(fmt.Sprintf("%-4s", "ID")), header(fmt.Sprintf("%-20s", "KIND")), header("CATEGORIES"))
	for _, k := range event.Kinds() {
		fmt.Fprintf(w, "%s  %s  %s\n",
			faint(fmt.Sprintf("%-4d", k)),
			kindName(fmt.Sprintf("%-20s", k)),
			catName(k.Categories()))
	}

	fmt.Fprintf(w, "\n%s\n", header("CATEGORY BITS"))
	for _, c := range event.AllCategories() {
		fmt.Fprintf(w, "%s  %s\n", faint(fmt.Sprintf("%-4d", c)), catName(c))
	}
}
