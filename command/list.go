package command

import (
	"fmt"
	"strings"

	"github.com/stsysd/payback/model"
)

const (
	MessageListSuccess      = "Listed and Refreshed the workers recorded in the system"
	MessageFindSuccess      = "%d persons listed!"
	MessageNoFindKeywordErr = "At least one keyword must be provided."
)

// ListCommand shows every person.
type ListCommand struct{}

// Execute clears the display filter.
func (ListCommand) Execute(m Model) (*Result, error) {
	m.ShowAll()
	return &Result{Feedback: MessageListSuccess}, nil
}

// FindCommand shows the persons whose name contains any of the keywords as a
// whole word, ignoring case.
type FindCommand struct {
	keywords []string
}

// NewFindCommand creates a find for the given keywords.
func NewFindCommand(keywords []string) (*FindCommand, error) {
	var cleaned []string
	for _, kw := range keywords {
		cleaned = append(cleaned, strings.Fields(kw)...)
	}
	if len(cleaned) == 0 {
		return nil, model.NewValidationError("keyword", MessageNoFindKeywordErr)
	}
	return &FindCommand{keywords: cleaned}, nil
}

// Execute narrows the displayed persons.
func (c *FindCommand) Execute(b Book) (*Result, error) {
	b.UpdateFilter(NameContainsKeywords(c.keywords))
	return &Result{Feedback: fmt.Sprintf(MessageFindSuccess, len(b.FilteredPersons()))}, nil
}

// NameContainsKeywords matches persons with a name word equal to any keyword.
func NameContainsKeywords(keywords []string) Predicate {
	return func(p *model.Person) bool {
		for _, word := range strings.Fields(p.Name().String()) {
			for _, kw := range keywords {
				if strings.EqualFold(word, kw) {
					return true
				}
			}
		}
		return false
	}
}
