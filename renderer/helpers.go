package renderer

import (
	"bytes"
	"io"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// sortIndicator returns the arrow shown next to a column title.
func sortIndicator(active, ascending bool) string {
	switch {
	case !active:
		return "↕"
	case ascending:
		return "↑"
	default:
		return "↓"
	}
}

// gainWord classifies an amount, in the wording of the summary cards.
func gainWord(isGain bool) string {
	if isGain {
		return "gain"
	}
	return "loss"
}
