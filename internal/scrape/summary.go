package scrape

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Summary is the ephemeral end-of-run tally: ordered name lists for new,
// updated and skipped items.
type Summary struct {
	New     []string
	Updated []string
	Skipped []string
}

// Print writes the run summary to w.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, color.CyanString("Run summary"))
	printGroup(w, color.GreenString("new"), s.New)
	printGroup(w, color.YellowString("updated"), s.Updated)
	printGroup(w, color.WhiteString("skipped"), s.Skipped)
}

func printGroup(w io.Writer, label string, names []string) {
	fmt.Fprintf(w, "  %s: %d\n", label, len(names))
	for _, n := range names {
		fmt.Fprintf(w, "    - %s\n", n)
	}
}
