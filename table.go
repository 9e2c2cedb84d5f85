package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/SergeyParamoshkin/newsdesk/internal/analytics"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func renderVisits(r analytics.Report) string {
	rows := [][]string{
		{"Total visits", strconv.Itoa(r.TotalVisits)},
		{"Unique visitors", strconv.Itoa(r.UniqueVisitors)},
	}
	if len(r.PeakHours) > 0 {
		rows = append(rows, []string{"Peak hour", strconv.Itoa(r.PeakHours[0].Hour) + "h"})
	}
	for _, c := range r.VisitsByCountry {
		rows = append(rows, []string{c.Country, strconv.Itoa(c.Visits)})
	}

	return renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}

func renderSections(r analytics.SectionReport) string {
	rows := make([][]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		rows = append(rows, []string{
			s.SectionLevel,
			s.SectionTitle,
			strconv.Itoa(s.UniqueUsers),
			strconv.Itoa(s.TotalViews),
			strconv.FormatFloat(s.AverageViewsPerUser, 'f', 2, 64),
		})
	}

	return renderTable(
		[]string{"Level", "Section", "Readers", "Views", "Avg"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
	)
}
