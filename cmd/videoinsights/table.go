package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"videoinsights/internal/agreement"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(title string, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}
	if len(rows) == 0 {
		empty := make(table.Row, columns)
		empty[0] = "(none)"
		for i := 1; i < columns; i++ {
			empty[i] = ""
		}
		tw.AppendRow(empty)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	if title == "" {
		return tw.Render()
	}
	return title + "\n" + tw.Render()
}

func renderTopicTable(title, rateHeader string, topics []agreement.RankedTopic) string {
	rows := make([][]string, 0, len(topics))
	for _, topic := range topics {
		rows = append(rows, []string{
			topic.Tag,
			strconv.Itoa(topic.TotalVideos),
			fmt.Sprintf("%.0f%%", topic.Rate),
		})
	}
	return renderTable(title, []string{"Topic", "Videos", rateHeader}, rows, []columnAlignment{alignLeft, alignRight, alignRight})
}
