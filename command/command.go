// Package command implements the user commands that read and change the
// address book.
package command

import (
	"github.com/stsysd/payback/model"
)

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
}

// Model is the address book view the edit command works against.
type Model interface {
	// FilteredPersons returns the currently displayed persons in order.
	FilteredPersons() []*model.Person
	// DuplicatesOf returns every stored person weakly equal to candidate.
	DuplicatesOf(candidate *model.Person) []*model.Person
	// SetPerson replaces target with edited in the authoritative list.
	SetPerson(target, edited *model.Person) error
	// ShowAll clears the display filter.
	ShowAll()
}

// Book extends Model with the operations used by the remaining commands.
type Book interface {
	Model
	// Persons returns every stored person in order.
	Persons() []*model.Person
	// AddPerson appends p to the authoritative list.
	AddPerson(p *model.Person) error
	// DeletePerson removes target from the authoritative list.
	DeletePerson(target *model.Person) error
	// UpdateFilter restricts the displayed persons to those matching pred.
	UpdateFilter(pred Predicate)
	// NextID allocates the next free ID for the given year joined.
	NextID(year model.YearJoined) (model.PersonID, error)
}

// Predicate selects persons for display.
type Predicate func(p *model.Person) bool

// ShowAllPersons matches every person.
func ShowAllPersons(*model.Person) bool { return true }

// findByID returns the person with the given ID, or nil.
func findByID(persons []*model.Person, id model.PersonID) *model.Person {
	for _, p := range persons {
		if p.ID() == id {
			return p
		}
	}
	return nil
}
