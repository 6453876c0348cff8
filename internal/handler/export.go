package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/subway-planner/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"line_id", "line_name", "line_color",
	"position", "up_station", "down_station", "distance",
}

// ExportRow is the JSON shape of one export row. Section fields are omitted
// for a line with no sections.
type ExportRow struct {
	LineID      string `json:"line_id"`
	LineName    string `json:"line_name"`
	LineColor   string `json:"line_color,omitempty"`
	Position    int    `json:"position,omitempty"`
	UpStation   string `json:"up_station,omitempty"`
	DownStation string `json:"down_station,omitempty"`
	Distance    int    `json:"distance,omitempty"`
}

// GetExport handles GET /export.
// It returns every line's sections as a flat table.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		s.writeError(w, r, &requestError{status: http.StatusBadRequest, msg: "invalid format: " + err.Error()})
		return
	}
	if format != "" && format != "csv" && format != "json" {
		s.writeError(w, r, &requestError{status: http.StatusBadRequest, msg: "format must be csv or json"})
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	out := make([]ExportRow, len(rows))
	for i, row := range rows {
		out[i] = ExportRow(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows as CSV. Empty section fields of a line with no
// sections are written as empty cells.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="network.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func exportRowToCSVRecord(r domain.ExportRow) []string {
	rec := []string{r.LineID, r.LineName, r.LineColor, "", r.UpStation, r.DownStation, ""}
	if r.Position > 0 {
		rec[3] = strconv.Itoa(r.Position)
		rec[6] = strconv.Itoa(r.Distance)
	}
	return rec
}
