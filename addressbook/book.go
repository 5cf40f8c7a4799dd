// Package addressbook はメモリ上のアドレス帳を提供します。
package addressbook

import (
	"fmt"
	"slices"
	"sync"

	"github.com/stsysd/payback/command"
	"github.com/stsysd/payback/model"
)

// Book は全従業員の一覧と表示用のフィルタを保持します。
// command.Book を実装します。
type Book struct {
	mu      sync.RWMutex
	persons []*model.Person
	filter  command.Predicate
}

var _ command.Book = (*Book)(nil)

// New は指定した一覧からBookを作成します。
// 弱い同一性で重複する従業員が含まれている場合はエラーを返します。
func New(persons []*model.Person) (*Book, error) {
	b := &Book{filter: command.ShowAllPersons}
	for _, p := range persons {
		if err := b.AddPerson(p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Persons は全従業員を登録順に返します。
func (b *Book) Persons() []*model.Person {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.persons)
}

// FilteredPersons は表示中の従業員を返します。
func (b *Book) FilteredPersons() []*model.Person {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var result []*model.Person
	for _, p := range b.persons {
		if b.filter(p) {
			result = append(result, p)
		}
	}
	return result
}

// DuplicatesOf は候補と弱い同一性で一致するすべての従業員を返します。
func (b *Book) DuplicatesOf(candidate *model.Person) []*model.Person {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var result []*model.Person
	for _, p := range b.persons {
		if p.IsSamePerson(candidate) {
			result = append(result, p)
		}
	}
	return result
}

// Has は弱い同一性で一致する従業員が存在するかを返します。
func (b *Book) Has(p *model.Person) bool {
	return len(b.DuplicatesOf(p)) > 0
}

// AddPerson は従業員を末尾に追加します。
func (b *Book) AddPerson(p *model.Person) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.persons {
		if existing.IsSamePerson(p) {
			return fmt.Errorf("person %s conflicts with %s", p.ID(), existing.ID())
		}
	}
	b.persons = append(b.persons, p)
	return nil
}

// SetPerson はtargetをeditedで置き換えます。順序は維持されます。
func (b *Book) SetPerson(target, edited *model.Person) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := slices.Index(b.persons, target)
	if i < 0 {
		return model.ErrPersonNotFound
	}
	// 置き換え対象以外との重複は許可しない
	for j, existing := range b.persons {
		if j != i && existing.IsSamePerson(edited) {
			return fmt.Errorf("person %s conflicts with %s", edited.ID(), existing.ID())
		}
	}
	b.persons[i] = edited
	return nil
}

// DeletePerson はtargetを削除します。
func (b *Book) DeletePerson(target *model.Person) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := slices.Index(b.persons, target)
	if i < 0 {
		return model.ErrPersonNotFound
	}
	b.persons = slices.Delete(b.persons, i, i+1)
	return nil
}

// UpdateFilter は表示用のフィルタを設定します。
func (b *Book) UpdateFilter(pred command.Predicate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pred == nil {
		pred = command.ShowAllPersons
	}
	b.filter = pred
}

// ShowAll はフィルタを解除します。
func (b *Book) ShowAll() {
	b.UpdateFilter(command.ShowAllPersons)
}

// NextID は指定した入社年で未使用の次のIDを返します。
func (b *Book) NextID(year model.YearJoined) (model.PersonID, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	seq := 0
	for _, p := range b.persons {
		if p.ID().YearPrefix() == year.Int()%100 && p.ID().Sequence() > seq {
			seq = p.ID().Sequence()
		}
	}
	return model.ComposePersonID(year, seq+1)
}
