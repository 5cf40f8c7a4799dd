package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stsysd/payback/model"
)

var (
	indexStyle  = lipgloss.NewStyle().Faint(true)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	detailStyle = lipgloss.NewStyle().PaddingLeft(4)
)

// renderPersons は表示中の従業員一覧を出力します。
func renderPersons(w io.Writer, persons []*model.Person) {
	for i, p := range persons {
		fmt.Fprintf(w, "%s %s %s\n",
			indexStyle.Render(fmt.Sprintf("%d.", i+1)),
			nameStyle.Render(p.Name().String()),
			idStyle.Render("#"+p.ID().String()),
		)
		details := []string{
			"Phone: " + p.Phone().String(),
			"Email: " + p.Email().String(),
			"Address: " + p.Address().String(),
			"Year Joined: " + p.YearJoined().String(),
		}
		if tags := p.TagStrings(); len(tags) > 0 {
			rendered := make([]string, len(tags))
			for j, tag := range tags {
				rendered[j] = tagStyle.Render(fmt.Sprintf("[%d:%s]", j+1, tag))
			}
			details = append(details, "Tags: "+strings.Join(rendered, " "))
		}
		fmt.Fprintln(w, detailStyle.Render(strings.Join(details, "\n")))
	}
}
