package tui

import "github.com/charmbracelet/lipgloss"

const (
	textFGColor     = "#c0c0c0"
	selectedFGColor = "#000000"
	selectedBGColor = "#5fafff"
	cursorBGColor   = "#3a3a3a"
	disabledFGColor = "240"
)

var (
	appStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	paneStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color(selectedBGColor))

	cellStyle         = lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Foreground(lipgloss.Color(textFGColor))
	headerCellStyle   = cellStyle.Foreground(lipgloss.Color("245"))
	disabledCellStyle = cellStyle.Foreground(lipgloss.Color(disabledFGColor)).Strikethrough(true)
	selectedCellStyle = cellStyle.Foreground(lipgloss.Color(selectedFGColor)).Background(lipgloss.Color(selectedBGColor))
	cursorCellStyle   = cellStyle.Background(lipgloss.Color(cursorBGColor))

	wheelStyle         = lipgloss.NewStyle().Width(12).Align(lipgloss.Center).Foreground(lipgloss.Color(disabledFGColor))
	wheelSelectedStyle = wheelStyle.Bold(true).Foreground(lipgloss.Color(textFGColor))
	wheelFocusedStyle  = wheelSelectedStyle.Background(lipgloss.Color(cursorBGColor))

	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(selectedBGColor))
)
