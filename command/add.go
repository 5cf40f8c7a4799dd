package command

import (
	"fmt"

	"github.com/stsysd/payback/model"
)

const MessageAddSuccess = "New person added: %s"

// AddCommand adds a new person. The ID is allocated from the year joined.
type AddCommand struct {
	name       model.Name
	phone      model.Phone
	email      model.Email
	address    model.Address
	yearJoined model.YearJoined
	tags       []model.Tag
}

// NewAddCommand creates an add of a person with the given details.
func NewAddCommand(name model.Name, phone model.Phone, email model.Email, address model.Address, yearJoined model.YearJoined, tags []model.Tag) *AddCommand {
	return &AddCommand{
		name:       name,
		phone:      phone,
		email:      email,
		address:    address,
		yearJoined: yearJoined,
		tags:       append([]model.Tag(nil), tags...),
	}
}

// Execute allocates an ID and stores the person.
func (c *AddCommand) Execute(b Book) (*Result, error) {
	id, err := b.NextID(c.yearJoined)
	if err != nil {
		return nil, err
	}
	p, err := model.NewPerson(id, c.name, c.phone, c.email, c.address, c.yearJoined, c.tags)
	if err != nil {
		return nil, err
	}
	if len(b.DuplicatesOf(p)) > 0 {
		return nil, NewError(KindDuplicateRecord, MessageDuplicatePerson)
	}
	if err := b.AddPerson(p); err != nil {
		return nil, fmt.Errorf("failed to add person: %w", err)
	}
	return &Result{Feedback: fmt.Sprintf(MessageAddSuccess, model.Format(p))}, nil
}
