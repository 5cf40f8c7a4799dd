package command

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stsysd/payback/model"
)

// fakeBook はテスト用のメモリ上のBookです。
type fakeBook struct {
	persons  []*model.Person
	filter   Predicate
	setCalls int
	showAll  int
}

var _ Book = (*fakeBook)(nil)

func newFakeBook(persons ...*model.Person) *fakeBook {
	return &fakeBook{persons: persons, filter: ShowAllPersons}
}

func (b *fakeBook) Persons() []*model.Person { return slices.Clone(b.persons) }

func (b *fakeBook) FilteredPersons() []*model.Person {
	var result []*model.Person
	for _, p := range b.persons {
		if b.filter(p) {
			result = append(result, p)
		}
	}
	return result
}

func (b *fakeBook) DuplicatesOf(candidate *model.Person) []*model.Person {
	var result []*model.Person
	for _, p := range b.persons {
		if p.IsSamePerson(candidate) {
			result = append(result, p)
		}
	}
	return result
}

func (b *fakeBook) SetPerson(target, edited *model.Person) error {
	b.setCalls++
	i := slices.Index(b.persons, target)
	if i < 0 {
		return model.ErrPersonNotFound
	}
	b.persons[i] = edited
	return nil
}

func (b *fakeBook) ShowAll() {
	b.showAll++
	b.filter = ShowAllPersons
}

func (b *fakeBook) AddPerson(p *model.Person) error {
	b.persons = append(b.persons, p)
	return nil
}

func (b *fakeBook) DeletePerson(target *model.Person) error {
	i := slices.Index(b.persons, target)
	if i < 0 {
		return model.ErrPersonNotFound
	}
	b.persons = slices.Delete(b.persons, i, i+1)
	return nil
}

func (b *fakeBook) UpdateFilter(pred Predicate) { b.filter = pred }

func (b *fakeBook) NextID(year model.YearJoined) (model.PersonID, error) {
	seq := 0
	for _, p := range b.persons {
		if p.ID().YearPrefix() == year.Int()%100 && p.ID().Sequence() > seq {
			seq = p.ID().Sequence()
		}
	}
	return model.ComposePersonID(year, seq+1)
}

func mustPerson(t *testing.T, id int, name, phone, email string, tags ...string) *model.Person {
	t.Helper()
	p, err := model.LoadPerson(id, name, phone, email, "123 Jurong West Ave 6", 2024, tags)
	require.NoError(t, err)
	return p
}

func mustID(t *testing.T, id int) model.PersonID {
	t.Helper()
	v, err := model.NewPersonID(id)
	require.NoError(t, err)
	return v
}

func mustTags(t *testing.T, raw ...string) []model.Tag {
	t.Helper()
	tags, err := model.NewTags(raw)
	require.NoError(t, err)
	return tags
}

func namePtr(t *testing.T, s string) *model.Name {
	t.Helper()
	v, err := model.NewName(s)
	require.NoError(t, err)
	return &v
}

func phonePtr(t *testing.T, s string) *model.Phone {
	t.Helper()
	v, err := model.NewPhone(s)
	require.NoError(t, err)
	return &v
}

func emailPtr(t *testing.T, s string) *model.Email {
	t.Helper()
	v, err := model.NewEmail(s)
	require.NoError(t, err)
	return &v
}

func addressPtr(t *testing.T, s string) *model.Address {
	t.Helper()
	v, err := model.NewAddress(s)
	require.NoError(t, err)
	return &v
}
