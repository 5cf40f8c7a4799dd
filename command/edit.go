package command

import (
	"fmt"
	"strings"

	"github.com/stsysd/payback/model"
)

// EditDescriptor holds the replacement values of an edit. A nil field keeps
// the current value.
type EditDescriptor struct {
	Name    *model.Name
	Phone   *model.Phone
	Email   *model.Email
	Address *model.Address

	// TagEdit is resolved against the current tags of the edited person.
	// nil behaves as NoTagEdit.
	TagEdit TagEdit
}

// IsAnyFieldEdited reports whether name, phone, email or address is set.
// A tag edit alone does not count.
func (d *EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil
}

// Clone returns a deep copy of d.
func (d *EditDescriptor) Clone() *EditDescriptor {
	return &EditDescriptor{
		Name:    clonePtr(d.Name),
		Phone:   clonePtr(d.Phone),
		Email:   clonePtr(d.Email),
		Address: clonePtr(d.Address),
		TagEdit: d.TagEdit,
	}
}

// Equals reports whether both descriptors carry the same edit.
func (d *EditDescriptor) Equals(other *EditDescriptor) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return ptrEqual(d.Name, other.Name) &&
		ptrEqual(d.Phone, other.Phone) &&
		ptrEqual(d.Email, other.Email) &&
		ptrEqual(d.Address, other.Address) &&
		d.tagEdit() == other.tagEdit()
}

func (d *EditDescriptor) String() string {
	var parts []string
	if d.Name != nil {
		parts = append(parts, "name="+d.Name.String())
	}
	if d.Phone != nil {
		parts = append(parts, "phone="+d.Phone.String())
	}
	if d.Email != nil {
		parts = append(parts, "email="+d.Email.String())
	}
	if d.Address != nil {
		parts = append(parts, "address="+d.Address.String())
	}
	parts = append(parts, "tags="+d.tagEdit().String())
	return "EditDescriptor{" + strings.Join(parts, ", ") + "}"
}

func (d *EditDescriptor) tagEdit() TagEdit {
	if d.TagEdit == nil {
		return NoTagEdit{}
	}
	return d.TagEdit
}

// ResolveTags applies the tag edit to the tags of p.
func (d *EditDescriptor) ResolveTags(p *model.Person) ([]model.Tag, error) {
	return d.tagEdit().Resolve(p.Tags())
}

// IsRedundantFor reports whether any supplied field equals the value p
// already has. One unchanged field blocks the whole edit even when other
// fields differ.
func (d *EditDescriptor) IsRedundantFor(p *model.Person) bool {
	return (d.Name != nil && *d.Name == p.Name()) ||
		(d.Phone != nil && *d.Phone == p.Phone()) ||
		(d.Email != nil && *d.Email == p.Email()) ||
		(d.Address != nil && *d.Address == p.Address())
}

// ApplyTo builds the edited person. ID and year joined always come from p;
// tags replace the tags of p.
func (d *EditDescriptor) ApplyTo(p *model.Person, tags []model.Tag) (*model.Person, error) {
	return model.NewPerson(
		p.ID(),
		valueOr(d.Name, p.Name()),
		valueOr(d.Phone, p.Phone()),
		valueOr(d.Email, p.Email()),
		valueOr(d.Address, p.Address()),
		p.YearJoined(),
		tags,
	)
}

// Merge resolves the tag edit and applies the descriptor to p.
func (d *EditDescriptor) Merge(p *model.Person) (*model.Person, error) {
	tags, err := d.ResolveTags(p)
	if err != nil {
		return nil, err
	}
	return d.ApplyTo(p, tags)
}

// EditCommand edits the details of an existing person.
type EditCommand struct {
	id         model.PersonID
	descriptor *EditDescriptor
}

// NewEditCommand creates an edit of the person with the given ID.
// The descriptor is copied.
func NewEditCommand(id model.PersonID, descriptor *EditDescriptor) *EditCommand {
	return &EditCommand{id: id, descriptor: descriptor.Clone()}
}

// Execute validates the edit against m and commits it.
// On any error m is left unchanged.
func (c *EditCommand) Execute(m Model) (*Result, error) {
	// 表示中の一覧からのみ検索する
	target := findByID(m.FilteredPersons(), c.id)
	if target == nil {
		return nil, NewError(KindRecordNotFound, MessageInvalidPersonID)
	}

	tags, err := c.descriptor.ResolveTags(target)
	if err != nil {
		return nil, err
	}

	if c.descriptor.IsRedundantFor(target) {
		return nil, NewError(KindRedundantEdit, MessageSameField)
	}

	edited, err := c.descriptor.ApplyTo(target, tags)
	if err != nil {
		return nil, err
	}

	for _, dup := range m.DuplicatesOf(edited) {
		if dup.ID() != edited.ID() {
			return nil, NewError(KindDuplicateRecord, MessageDuplicatePerson)
		}
	}

	if err := m.SetPerson(target, edited); err != nil {
		return nil, fmt.Errorf("failed to replace person %s: %w", target.ID(), err)
	}
	m.ShowAll()

	return &Result{Feedback: fmt.Sprintf(MessageEditPersonSuccess, model.Format(edited))}, nil
}

// ID returns the ID of the person to edit.
func (c *EditCommand) ID() model.PersonID {
	return c.id
}

// Descriptor returns a copy of the edit.
func (c *EditCommand) Descriptor() *EditDescriptor {
	return c.descriptor.Clone()
}

func (c *EditCommand) String() string {
	return fmt.Sprintf("EditCommand{id=%s, descriptor=%s}", c.id, c.descriptor)
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
