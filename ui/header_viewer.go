package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"sqlite-header/dbheader"
)

type Row struct {
	Key   string
	Value string
}

type HeaderViewer struct {
	path      string
	rows      []Row
	anomalies []error
	cursor    int
	quitting  bool
}

func CreateHeaderViewer(path string, header dbheader.Header) HeaderViewer {
	lhm := dbheader.ToLinkedHashMap(header)
	rows := lo.Map(
		lhm.Keys(),
		func(key string, _ int) Row {
			value, _ := lhm.Get(key)
			return Row{
				Key:   key,
				Value: fmt.Sprintf("%v", value),
			}
		},
	)
	return HeaderViewer{
		path:      path,
		rows:      rows,
		anomalies: dbheader.Check(header),
	}
}

func (s HeaderViewer) Cursor() int {
	return s.cursor
}

func (s HeaderViewer) View() string {
	if s.quitting {
		return ""
	}

	output := "SQLITE HEADER\n\n"
	output += "File: " + s.path + "\n\n"

	width := lo.Max(
		lo.Map(
			s.rows,
			func(row Row, _ int) int {
				return len(row.Key)
			},
		),
	)
	for i, row := range s.rows {
		cursor := " "
		if i == s.cursor {
			cursor = ">"
		}
		output += fmt.Sprintf("%s %-*s  %s\n", cursor, width, row.Key, row.Value)
	}

	if field, ok := dbheader.FieldByKey(s.rows[s.cursor].Key); ok {
		output += fmt.Sprintf("\noffset %d, %d bytes: %s\n", field.Offset, field.Size, field.Description)
	}
	for _, anomaly := range s.anomalies {
		output += "warning: " + anomaly.Error() + "\n"
	}
	output += "\n" + strings.Join([]string{"j/k: move", "q: quit"}, "  ") + "\n"

	return output
}

func (s HeaderViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		s.quitting = true
		return s, tea.Quit
	case "down", "j":
		s.cursor = lo.Clamp(s.cursor+1, 0, len(s.rows)-1)
	case "up", "k":
		s.cursor = lo.Clamp(s.cursor-1, 0, len(s.rows)-1)
	case "home", "g":
		s.cursor = 0
	case "end", "G":
		s.cursor = len(s.rows) - 1
	}
	return s, nil
}

func (s HeaderViewer) Init() tea.Cmd {
	return nil
}
