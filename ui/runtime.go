package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"sqlite-header/dbheader"
)

func Start(path string, header dbheader.Header) error {
	headerViewer := CreateHeaderViewer(path, header)
	if err := tea.NewProgram(headerViewer).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
