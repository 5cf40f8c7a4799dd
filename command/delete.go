package command

import (
	"fmt"

	"github.com/stsysd/payback/model"
)

const MessageDeleteSuccess = "Deleted Person: %s"

// DeleteCommand deletes a displayed person.
type DeleteCommand struct {
	id model.PersonID
}

// NewDeleteCommand creates a delete of the person with the given ID.
func NewDeleteCommand(id model.PersonID) *DeleteCommand {
	return &DeleteCommand{id: id}
}

// Execute removes the person.
func (c *DeleteCommand) Execute(b Book) (*Result, error) {
	target := findByID(b.FilteredPersons(), c.id)
	if target == nil {
		return nil, NewError(KindRecordNotFound, MessageInvalidPersonID)
	}
	if err := b.DeletePerson(target); err != nil {
		return nil, fmt.Errorf("failed to delete person %s: %w", c.id, err)
	}
	return &Result{Feedback: fmt.Sprintf(MessageDeleteSuccess, model.Format(target))}, nil
}
