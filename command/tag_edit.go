package command

import (
	"fmt"
	"slices"

	"github.com/stsysd/payback/model"
)

// ClearTagsIndex is the tag index that clears every tag.
const ClearTagsIndex = -1

// TagEdit is the single tag change attached to an edit.
// It is one of NoTagEdit, ClearTags or SetTag.
type TagEdit interface {
	// Resolve applies the change to current and returns the new tag list.
	// current is never modified.
	Resolve(current []model.Tag) ([]model.Tag, error)
	fmt.Stringer
	isTagEdit()
}

// NoTagEdit keeps the tags unchanged.
type NoTagEdit struct{}

// ClearTags removes every tag.
type ClearTags struct{}

// SetTag replaces the tag at the 1-based Index with Text.
type SetTag struct {
	Index int
	Text  string
}

// ParseTagEdit converts the index/text pair given on the command line.
func ParseTagEdit(index int, text string) TagEdit {
	if index == ClearTagsIndex {
		return ClearTags{}
	}
	return SetTag{Index: index, Text: text}
}

func (NoTagEdit) isTagEdit() {}
func (ClearTags) isTagEdit() {}
func (SetTag) isTagEdit()    {}

func (NoTagEdit) Resolve(current []model.Tag) ([]model.Tag, error) {
	return slices.Clone(current), nil
}

func (ClearTags) Resolve([]model.Tag) ([]model.Tag, error) {
	return []model.Tag{}, nil
}

func (e SetTag) Resolve(current []model.Tag) ([]model.Tag, error) {
	if e.Index > len(current) {
		return nil, NewError(KindInvalidIndex, MessageInvalidTagIndex)
	}
	if e.Index == 0 && len(current) == 0 {
		return nil, NewError(KindNoTagPresent, MessageNoTagPresent)
	}
	if e.Index < 1 {
		return nil, NewError(KindInvalidIndex, MessageInvalidTagIndex)
	}

	tag, err := model.NewTag(e.Text)
	if err != nil {
		return nil, err
	}
	if slices.Contains(current, tag) {
		return nil, NewError(KindDuplicateTag, MessageDuplicateTag)
	}

	tags := slices.Clone(current)
	tags[e.Index-1] = tag
	return tags, nil
}

func (NoTagEdit) String() string { return "none" }
func (ClearTags) String() string { return "clear" }
func (e SetTag) String() string  { return fmt.Sprintf("set %d %s", e.Index, e.Text) }
