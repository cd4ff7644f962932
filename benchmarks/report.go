package benchmarks

import (
	"fmt"
	"io"
)

const (
	sizeWidth   = 5
	columnWidth = 14
)

// Header names the report columns in order.
var Header = [...]string{"size", "bytes", "alloc ms", "fill ms", "dtor ms"}

// Report writes benchmark sections to w.
type Report struct {
	w        io.Writer
	sections int
}

// NewReport returns a report writing to w.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Section starts a new kind section: a title line and the column header.
// Sections after the first are preceded by two blank lines.
func (r *Report) Section(title string) error {
	if r.sections > 0 {
		if _, err := io.WriteString(r.w, "\n\n"); err != nil {
			return err
		}
	}
	r.sections++

	if _, err := fmt.Fprintf(r.w, "---------- %s image benchmarks ----------\n", title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.w, "%*s|%*s|%*s|%*s|%*s\n",
		sizeWidth, Header[0],
		columnWidth, Header[1],
		columnWidth, Header[2],
		columnWidth, Header[3],
		columnWidth, Header[4])
	return err
}

// Row writes one result line.
func (r *Report) Row(row Row) error {
	_, err := fmt.Fprintf(r.w, "%*d|%*d|%*d|%*d|%*d\n",
		sizeWidth, row.Size,
		columnWidth, row.Bytes,
		columnWidth, row.AllocMillis,
		columnWidth, row.FillMillis,
		columnWidth, row.DtorMillis)
	return err
}
