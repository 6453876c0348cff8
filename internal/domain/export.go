package domain

// ExportRow is a single row in the network export.
// It is a flat, denormalized view: one row per section, with line fields
// repeated for every section on that line. Position is the 1-based index of
// the section counted from the line's up-terminal.
// Lines with no sections yield one row with zero values for the section fields.
type ExportRow struct {
	LineID    string
	LineName  string
	LineColor string

	Position    int
	UpStation   string
	DownStation string
	Distance    int
}
