package report

import (
	"io"

	"github.com/dtnitsch/url-keywords/models"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable prints the rows as a borderless summary table.
func RenderTable(w io.Writer, topN int, rows []models.ResultRow) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
		}),
	)

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, Record(row, topN))
	}

	table.Header(Header(topN))
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
