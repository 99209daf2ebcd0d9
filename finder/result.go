package finder

import (
	"strconv"
	"strings"
)

// Result is one fully assigned combination plus the score that ranks it.
type Result struct {
	// Values holds one candidate value per slot, in slot order. The slice is
	// owned by the Result; the engine never mutates it after collection.
	Values []float64

	// Score is the scalar produced by the caller's scoring function.
	// It is the sole ranking key.
	Score float64

	// seq is the enumeration sequence number, the deterministic secondary
	// key that fixes the order of equal-score results.
	seq uint64
}

// Format renders the result as
//
//	(name1=value1, name2=value2, …) => (score=S, <interpretation>)
//
// params supplies the slot names in slot order; interpret may be nil, in
// which case the interpretation clause is omitted.
func (r Result) Format(params []Parameter, interpret InterpretFunc) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range r.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < len(params) {
			b.WriteString(string(params[i]))
		}
		b.WriteByte('=')
		b.WriteString(formatFloat(v))
	}
	b.WriteString(") => (score=")
	b.WriteString(formatFloat(r.Score))
	if interpret != nil {
		b.WriteString(", ")
		b.WriteString(interpret(r.Values))
	}
	b.WriteByte(')')

	return b.String()
}

// ResultSet is the ordered outcome of one Search call: the selected
// combinations (descending by score), the slot parameter names, and the
// interpretation function for display.
type ResultSet struct {
	// Results are the selected combinations, best first.
	Results []Result

	// Params are the slot names, in slot order.
	Params []Parameter

	interpret InterpretFunc
}

// Len reports the number of selected combinations.
func (rs *ResultSet) Len() int {
	return len(rs.Results)
}

// Join renders every result joined by sep.
func (rs *ResultSet) Join(sep string) string {
	parts := make([]string, len(rs.Results))
	for i, r := range rs.Results {
		parts[i] = r.Format(rs.Params, rs.interpret)
	}

	return strings.Join(parts, sep)
}

// String renders the result set one combination per line.
func (rs *ResultSet) String() string {
	return rs.Join("\n")
}

// formatFloat renders values and scores in their shortest exact form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
