package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"execexam/internal/diagnostics"
	"execexam/internal/domain"
	"execexam/internal/storage"
)

var _ Viewer = (*FailureViewer)(nil)

// FailureViewer displays failing tests and their source in an interactive TUI
type FailureViewer struct {
	storage storage.Storage
	log     logrus.FieldLogger
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage, log logrus.FieldLogger) *FailureViewer {
	return &FailureViewer{
		storage: st,
		log:     log.WithField("component", "ui.viewer"),
	}
}

// View displays the failures of d. Toggling a failure as resolved is saved
// back to storage.
func (fv *FailureViewer) View(d *domain.Diagnostics) error {
	if len(d.Failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	if len(d.Resolved) != len(d.Failures) {
		d.Resolved = make([]bool, len(d.Failures))
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range d.Failures {
		list.AddItem(listItemText(d, i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(" Failing Tests (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
			len(d.Failures), countUnresolved(d)))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(d.Failures) {
			return
		}
		statsView.SetText(formatFailureStats(d.Failures[index]))
		detailsView.SetText(formatFailureDetails(d, index))
		detailsView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(d.Failures) {
					d.Resolved[index] = !d.Resolved[index]
					list.SetItemText(index, listItemText(d, index), "")
					updateHeader()
					if err := fv.storage.Save(d); err != nil {
						fv.log.WithError(err).Warn("failed to save resolved status")
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func listItemText(d *domain.Diagnostics, index int) string {
	name := d.Failures[index].Location.TestName
	if d.Resolved[index] {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, tview.Escape(name))
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(name))
}

func countUnresolved(d *domain.Diagnostics) int {
	count := 0
	for _, r := range d.Resolved {
		if !r {
			count++
		}
	}
	return count
}

// formatFailureStats formats the header line above the details
func formatFailureStats(failure domain.FailureDetail) string {
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]:[yellow]%d[white]\n",
		tview.Escape(diagnostics.ElidePath(failure.Location.TestPath, diagnostics.DisplayPathComponents)), failure.LineNo)
}

// formatFailureDetails formats a failure and its source using tview color tags
func formatFailureDetails(d *domain.Diagnostics, index int) string {
	failure := d.Failures[index]
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", tview.Escape(failure.NodeID))
	fmt.Fprintf(&b, "[cyan]File: %s[white]\n", tview.Escape(failure.Location.TestPath))
	fmt.Fprintf(&b, "[yellow]Line number:[white] %d\n\n", failure.LineNo)
	if failure.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n\n", tview.Escape(failure.Message))
	}

	if index < len(d.Snippets) {
		snippet := d.Snippets[index]
		if snippet.Error != "" {
			fmt.Fprintf(&b, "[gray]%s[white]\n", tview.Escape(snippet.Error))
		} else {
			fmt.Fprintf(&b, "[yellow]Source:[white]\n%s", tview.Escape(snippet.Source))
		}
	}
	return b.String()
}
