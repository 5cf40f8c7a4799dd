package command

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stsysd/payback/model"
)

// personComparer はPersonを全フィールドで比較します。
var personComparer = cmp.Comparer(func(a, b *model.Person) bool { return a.Equals(b) })

func assertPersons(t *testing.T, want, got []*model.Person) {
	t.Helper()
	if diff := cmp.Diff(want, got, personComparer); diff != "" {
		t.Errorf("persons mismatch (-want +got):\n%s", diff)
	}
}

func TestEditDescriptorIsAnyFieldEdited(t *testing.T) {
	assert.False(t, (&EditDescriptor{}).IsAnyFieldEdited())
	assert.False(t, (&EditDescriptor{TagEdit: ClearTags{}}).IsAnyFieldEdited(), "a tag edit alone does not count")
	assert.True(t, (&EditDescriptor{Name: namePtr(t, "Bob")}).IsAnyFieldEdited())
	assert.True(t, (&EditDescriptor{Phone: phonePtr(t, "123")}).IsAnyFieldEdited())
	assert.True(t, (&EditDescriptor{Email: emailPtr(t, "a@b.c")}).IsAnyFieldEdited())
	assert.True(t, (&EditDescriptor{Address: addressPtr(t, "somewhere")}).IsAnyFieldEdited())
}

func TestEditDescriptorEquals(t *testing.T) {
	d := &EditDescriptor{Name: namePtr(t, "Bob"), TagEdit: SetTag{Index: 1, Text: "friends"}}

	assert.True(t, d.Equals(d.Clone()))
	assert.True(t, (&EditDescriptor{}).Equals(&EditDescriptor{TagEdit: NoTagEdit{}}), "nil tag edit equals NoTagEdit")
	assert.False(t, d.Equals(&EditDescriptor{Name: namePtr(t, "Bob")}))
	assert.False(t, d.Equals(&EditDescriptor{Name: namePtr(t, "Amy"), TagEdit: SetTag{Index: 1, Text: "friends"}}))
	assert.False(t, d.Equals(nil))
}

func TestEditDescriptorClone(t *testing.T) {
	d := &EditDescriptor{Name: namePtr(t, "Bob")}
	c := d.Clone()
	*c.Name = *namePtr(t, "Amy")
	assert.Equal(t, "Bob", d.Name.String())
}

func TestEditDescriptorIsRedundantFor(t *testing.T) {
	p := mustPerson(t, 240001, "Alice Pauline", "94351253", "alice@example.com")

	tests := []struct {
		name        string
		descriptor  *EditDescriptor
		expected    bool
		description string
	}{
		{
			name:        "Empty",
			descriptor:  &EditDescriptor{},
			expected:    false,
			description: "何も指定しない場合は冗長ではないこと",
		},
		{
			name:        "All different",
			descriptor:  &EditDescriptor{Name: namePtr(t, "Bob"), Phone: phonePtr(t, "11111111")},
			expected:    false,
			description: "すべて異なる場合は冗長ではないこと",
		},
		{
			name:        "Same phone while email differs",
			descriptor:  &EditDescriptor{Phone: phonePtr(t, "94351253"), Email: emailPtr(t, "new@example.com")},
			expected:    true,
			description: "一つでも同じ値があれば冗長とみなすこと",
		},
		{
			name:        "Same address",
			descriptor:  &EditDescriptor{Address: addressPtr(t, "123 Jurong West Ave 6")},
			expected:    true,
			description: "住所が同じ場合は冗長とみなすこと",
		},
		{
			name:        "Tag edit only",
			descriptor:  &EditDescriptor{TagEdit: ClearTags{}},
			expected:    false,
			description: "タグ編集は冗長判定に含めないこと",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.descriptor.IsRedundantFor(p), tt.description)
		})
	}
}

func TestEditDescriptorMerge(t *testing.T) {
	p := mustPerson(t, 240001, "Alice Pauline", "94351253", "alice@example.com", "friends")

	t.Run("Empty descriptor is identity", func(t *testing.T) {
		merged, err := (&EditDescriptor{}).Merge(p)
		require.NoError(t, err)
		assert.True(t, merged.Equals(p))

		again, err := (&EditDescriptor{}).Merge(merged)
		require.NoError(t, err)
		assert.True(t, again.Equals(p))
	})

	t.Run("ID and year joined preserved", func(t *testing.T) {
		merged, err := (&EditDescriptor{
			Name:    namePtr(t, "Alice Tan"),
			Phone:   phonePtr(t, "11111111"),
			Email:   emailPtr(t, "tan@example.com"),
			Address: addressPtr(t, "1 Changi Road"),
			TagEdit: SetTag{Index: 1, Text: "mentor"},
		}).Merge(p)
		require.NoError(t, err)

		assert.Equal(t, p.ID(), merged.ID())
		assert.Equal(t, p.YearJoined(), merged.YearJoined())
		assert.Equal(t, "Alice Tan", merged.Name().String())
		assert.Equal(t, "11111111", merged.Phone().String())
		assert.Equal(t, "tan@example.com", merged.Email().String())
		assert.Equal(t, "1 Changi Road", merged.Address().String())
		assert.Equal(t, []string{"mentor"}, merged.TagStrings())
		assert.Equal(t, []string{"friends"}, p.TagStrings(), "original must be unchanged")
	})
}

func TestNewEditCommandCopiesDescriptor(t *testing.T) {
	d := &EditDescriptor{Name: namePtr(t, "Bob")}
	c := NewEditCommand(mustID(t, 240001), d)
	d.Name = namePtr(t, "Amy")

	assert.Equal(t, "Bob", c.Descriptor().Name.String())
	assert.Equal(t, 240001, c.ID().Int())
}

func TestEditCommandExecute(t *testing.T) {
	alice := func(t *testing.T) *model.Person {
		return mustPerson(t, 240001, "Alice Pauline", "94351253", "alice@example.com", "friends", "colleagues")
	}
	benson := func(t *testing.T) *model.Person {
		return mustPerson(t, 240002, "Benson Meier", "98765432", "johnd@example.com")
	}

	t.Run("Success", func(t *testing.T) {
		a, b := alice(t), benson(t)
		book := newFakeBook(a, b)
		book.UpdateFilter(NameContainsKeywords([]string{"alice"}))

		cmd := NewEditCommand(a.ID(), &EditDescriptor{
			Phone:   phonePtr(t, "91234567"),
			Email:   emailPtr(t, "johndoe@example.com"),
			TagEdit: SetTag{Index: 2, Text: "mentor"},
		})
		result, err := cmd.Execute(book)
		require.NoError(t, err)

		edited := mustPerson(t, 240001, "Alice Pauline", "91234567", "johndoe@example.com", "friends", "mentor")
		assert.Equal(t, "Edited Person: "+model.Format(edited), result.Feedback)
		assertPersons(t, []*model.Person{edited, b}, book.Persons())
		assert.Equal(t, 1, book.setCalls)
		assert.Equal(t, 1, book.showAll)
		assert.Len(t, book.FilteredPersons(), 2, "filter is reset after a successful edit")
	})

	t.Run("Clear tags", func(t *testing.T) {
		a := alice(t)
		book := newFakeBook(a)

		_, err := NewEditCommand(a.ID(), &EditDescriptor{
			Name:    namePtr(t, "Alice Tan"),
			TagEdit: ClearTags{},
		}).Execute(book)
		require.NoError(t, err)
		assert.Empty(t, book.Persons()[0].Tags())
	})

	failures := []struct {
		name        string
		persons     func(t *testing.T) []*model.Person
		filter      Predicate
		id          int
		descriptor  func(t *testing.T) *EditDescriptor
		expected    error
		description string
	}{
		{
			name:    "Unknown ID",
			persons: func(t *testing.T) []*model.Person { return []*model.Person{alice(t)} },
			id:      249999,
			descriptor: func(t *testing.T) *EditDescriptor {
				return &EditDescriptor{Name: namePtr(t, "Bob")}
			},
			expected:    ErrRecordNotFound,
			description: "存在しないIDはRecordNotFoundになること",
		},
		{
			name:    "Filtered out",
			persons: func(t *testing.T) []*model.Person { return []*model.Person{alice(t), benson(t)} },
			filter:  NameContainsKeywords([]string{"alice"}),
			id:      240002,
			descriptor: func(t *testing.T) *EditDescriptor {
				return &EditDescriptor{Name: namePtr(t, "Bob")}
			},
			expected:    ErrRecordNotFound,
			description: "表示されていない従業員はRecordNotFoundになること",
		},
		{
			name:    "Tag index on empty tag list",
			persons: func(t *testing.T) []*model.Person { return []*model.Person{benson(t)} },
			id:      240002,
			descriptor: func(t *testing.T) *EditDescriptor {
				return &EditDescriptor{Name: namePtr(t, "Bob"), TagEdit: SetTag{Index: 1, Text: "friends"}}
			},
			expected:    ErrInvalidIndex,
			description: "タグがない従業員へのインデックス1はInvalidIndexになること",
		},
		{
			name:    "Tag index zero on empty tag list",
			persons: func(t *testing.T) []*model.Person { return []*model.Person{benson(t)} },
			id:      240002,
			descriptor: func(t *testing.T) *EditDescriptor {
				return &EditDescriptor{Name: namePtr(t, "Bob"), TagEdit: SetTag{Index: 0, Text: "friends"}}
			},
			expected:    ErrNoTagPresent,
			description: "タグがない従業員へのインデックス0はNoTagPresentになること",
		},
		{
			name:    "Duplicate tag",
			persons: func(t *testing.T) []*model.Person { return []*model.Person{alice(t)} },
			id:      240001,
			descriptor: func(t *testing.T) *EditDescriptor {
				return &EditDescriptor{Name: namePtr(t, "Bob"), TagEdit: SetTag{Index: 1, Text: "colleagues"}}
			},
			expected:    ErrDuplicateTag,
			description: "既存タグと重複する場合はDuplicateTagになること",
		},
		{
			name:    "Same phone while email differs",
			persons: func(t *testing.T) []*model.Person { return []*model.Person{alice(t)} },
			id:      240001,
			descriptor: func(t *testing.T) *EditDescriptor {
				return &EditDescriptor{Phone: phonePtr(t, "94351253"), Email: emailPtr(t, "new@example.com")}
			},
			expected:    ErrRedundantEdit,
			description: "一つでも現在値と同じフィールドがあればRedundantEditになること",
		},
		{
			name:    "Tag error wins over redundant field",
			persons: func(t *testing.T) []*model.Person { return []*model.Person{alice(t)} },
			id:      240001,
			descriptor: func(t *testing.T) *EditDescriptor {
				return &EditDescriptor{Name: namePtr(t, "Alice Pauline"), TagEdit: SetTag{Index: 5, Text: "x"}}
			},
			expected:    ErrInvalidIndex,
			description: "タグ編集の検証が冗長判定より先に行われること",
		},
		{
			name:    "Phone of another person",
			persons: func(t *testing.T) []*model.Person { return []*model.Person{alice(t), benson(t)} },
			id:      240001,
			descriptor: func(t *testing.T) *EditDescriptor {
				return &EditDescriptor{Phone: phonePtr(t, "98765432")}
			},
			expected:    ErrDuplicateRecord,
			description: "他の従業員と電話番号が重複する場合はDuplicateRecordになること",
		},
		{
			name:    "Email of another person",
			persons: func(t *testing.T) []*model.Person { return []*model.Person{alice(t), benson(t)} },
			id:      240002,
			descriptor: func(t *testing.T) *EditDescriptor {
				return &EditDescriptor{Email: emailPtr(t, "alice@example.com")}
			},
			expected:    ErrDuplicateRecord,
			description: "他の従業員とメールアドレスが重複する場合はDuplicateRecordになること",
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			persons := tt.persons(t)
			book := newFakeBook(persons...)
			if tt.filter != nil {
				book.UpdateFilter(tt.filter)
			}
			before := book.Persons()
			filteredBefore := book.FilteredPersons()

			result, err := NewEditCommand(mustID(t, tt.id), tt.descriptor(t)).Execute(book)
			require.Error(t, err, tt.description)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.expected), "got %v, want kind of %v", err, tt.expected)

			assertPersons(t, before, book.Persons())
			assertPersons(t, filteredBefore, book.FilteredPersons())
			assert.Zero(t, book.setCalls)
			assert.Zero(t, book.showAll)
		})
	}
}

func TestEditCommandErrorMessages(t *testing.T) {
	a := mustPerson(t, 240001, "Alice Pauline", "94351253", "alice@example.com")
	book := newFakeBook(a)

	_, err := NewEditCommand(mustID(t, 249999), &EditDescriptor{Name: namePtr(t, "Bob")}).Execute(book)
	assert.EqualError(t, err, MessageInvalidPersonID)

	_, err = NewEditCommand(a.ID(), &EditDescriptor{Name: namePtr(t, "Alice Pauline")}).Execute(book)
	assert.EqualError(t, err, MessageSameField)

	_, err = NewEditCommand(a.ID(), &EditDescriptor{Name: namePtr(t, "Bob"), TagEdit: SetTag{Index: 1, Text: "x"}}).Execute(book)
	assert.EqualError(t, err, MessageInvalidTagIndex)
}
