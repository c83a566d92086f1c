// Package report serializes keyword rows.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dtnitsch/url-keywords/models"
	"github.com/dtnitsch/url-keywords/pkg/storage"
)

// Header returns the fixed column names for topN keyword slots.
func Header(topN int) []string {
	cols := make([]string, 0, topN+2)
	cols = append(cols, "url")
	for i := 1; i <= topN; i++ {
		cols = append(cols, "keyword_"+strconv.Itoa(i))
	}
	return append(cols, "error")
}

// Record flattens a row to exactly topN+2 fields. Absent values are empty.
func Record(row models.ResultRow, topN int) []string {
	rec := make([]string, topN+2)
	rec[0] = row.URL
	for i := 0; i < topN && i < len(row.Keywords); i++ {
		if row.Keywords[i] != nil {
			rec[i+1] = *row.Keywords[i]
		}
	}
	if row.Error != nil {
		rec[topN+1] = *row.Error
	}
	return rec
}

// WriteCSV writes the header and rows to path. The file is replaced only
// once every row has been written.
func WriteCSV(path string, topN int, rows []models.ResultRow) error {
	s := &storage.Storage{}
	err := s.SaveFileAtomic(path, func(f *os.File) error {
		return Encode(f, topN, rows)
	})
	if err != nil {
		return fmt.Errorf("failed to write CSV %s: %w", path, err)
	}
	return nil
}

// Encode writes the CSV with every field quoted.
func Encode(w io.Writer, topN int, rows []models.ResultRow) error {
	bw := bufio.NewWriter(w)
	writeRecord(bw, Header(topN))
	for _, row := range rows {
		writeRecord(bw, Record(row, topN))
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteByte('\n')
}
