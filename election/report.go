package election

import (
	"ElectSim/vote"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var reportOrder = [...]vote.Party{vote.Democrat, vote.Republican, vote.Independent}

var (
	winColor = color.New(color.FgGreen, color.Bold)
	tieColor = color.New(color.FgYellow)
)

// WriteReport writes the human-readable summary of r to w.
func WriteReport(w io.Writer, r Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Run %s (seed %d), population %d\n", r.RunID, r.Seed, r.Population)
	for _, p := range reportOrder {
		fmt.Fprintf(&sb, "There were %d votes for the %s candidate.\n", r.Tally.Votes(p), p.Title())
	}
	fmt.Fprintf(&sb, "%d voters abstained.\n", r.Tally.Abstentions)
	if p, ok := r.Outcome.Winner(); ok {
		sb.WriteString(winColor.Sprintf("%ss win!", p.Title()))
	} else {
		sb.WriteString(tieColor.Sprint("No clear winner."))
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
