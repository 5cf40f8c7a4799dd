package command

// Kind classifies command failures. All kinds are user-facing and leave the
// model unchanged.
type Kind string

const (
	// KindRecordNotFound indicates the ID is not in the displayed list.
	KindRecordNotFound Kind = "record_not_found"
	// KindRedundantEdit indicates a supplied field equals its current value.
	KindRedundantEdit Kind = "redundant_edit"
	// KindInvalidIndex indicates a tag index outside the tag list.
	KindInvalidIndex Kind = "invalid_index"
	// KindNoTagPresent indicates a tag edit on a person without tags.
	KindNoTagPresent Kind = "no_tag_present"
	// KindDuplicateTag indicates the new tag already exists on the person.
	KindDuplicateTag Kind = "duplicate_tag"
	// KindDuplicateRecord indicates another person shares an ID, phone or email.
	KindDuplicateRecord Kind = "duplicate_record"
	// KindNotEdited indicates an edit without any field to change.
	KindNotEdited Kind = "not_edited"
)

// User-facing messages.
const (
	MessageInvalidPersonID   = "The person ID provided is invalid"
	MessageSameField         = "The new value of an edited field must differ from its current value."
	MessageInvalidTagIndex   = "The tag index provided is invalid"
	MessageNoTagPresent      = "This person has no tags to edit."
	MessageDuplicateTag      = "This tag already exists for this person."
	MessageDuplicatePerson   = "This person already exists in the address book."
	MessageNotEdited         = "At least one field to edit must be provided."
	MessageEditPersonSuccess = "Edited Person: %s"
)

// Error is a typed command failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches errors of the same kind, so the sentinels below work with
// errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrRecordNotFound  = &Error{Kind: KindRecordNotFound}
	ErrRedundantEdit   = &Error{Kind: KindRedundantEdit}
	ErrInvalidIndex    = &Error{Kind: KindInvalidIndex}
	ErrNoTagPresent    = &Error{Kind: KindNoTagPresent}
	ErrDuplicateTag    = &Error{Kind: KindDuplicateTag}
	ErrDuplicateRecord = &Error{Kind: KindDuplicateRecord}
	ErrNotEdited       = &Error{Kind: KindNotEdited}
)

// NewError creates a command failure of the given kind.
func NewError(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}
