// Package model provides value objects for person field validation.
package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z0-9]+( +[A-Za-z0-9]+)*$`)
	phonePattern = regexp.MustCompile(`^[0-9]{3,}$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9]+([+_.-][A-Za-z0-9]+)*@[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*$`)
	tagPattern   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// PersonID represents a person ID value object.
//
// IDs are allocated as yy*10000+seq, where yy is the last two digits of the
// year joined and seq counts employees who joined that year.
type PersonID struct {
	value int
}

// NewPersonID creates a new person ID value object.
func NewPersonID(id int) (PersonID, error) {
	if id <= 0 {
		return PersonID{}, NewValidationError("id", "ID must be a positive integer")
	}
	return PersonID{value: id}, nil
}

// ParsePersonID parses a person ID from its decimal form.
func ParsePersonID(idStr string) (PersonID, error) {
	if idStr == "" {
		return PersonID{}, NewValidationError("id", "ID is required")
	}
	id, err := parseInt(idStr)
	if err != nil {
		return PersonID{}, NewValidationError("id", fmt.Sprintf("invalid ID %q: must be a positive integer", idStr))
	}
	return NewPersonID(id)
}

// ComposePersonID builds the ID of the seq-th employee who joined in year.
func ComposePersonID(year YearJoined, seq int) (PersonID, error) {
	if seq <= 0 || seq >= idSequenceSpan {
		return PersonID{}, NewValidationError("id", fmt.Sprintf("no IDs left for year %d", year.Int()))
	}
	return NewPersonID((year.Int()%100)*idSequenceSpan + seq)
}

const idSequenceSpan = 10000

// Sequence returns the per-year sequence part of the ID.
func (p PersonID) Sequence() int {
	return p.value % idSequenceSpan
}

// YearPrefix returns the two digit year part of the ID.
func (p PersonID) YearPrefix() int {
	return p.value / idSequenceSpan
}

// Int returns the integer value.
func (p PersonID) Int() int {
	return p.value
}

// String returns the ID in decimal form.
func (p PersonID) String() string {
	return strconv.Itoa(p.value)
}

// Name represents a person name value object.
type Name struct {
	value string
}

// NewName creates a new name value object.
func NewName(name string) (Name, error) {
	name = strings.TrimSpace(name)
	if !namePattern.MatchString(name) {
		return Name{}, NewValidationError("name", "Names should only contain alphanumeric characters and spaces, and it should not be blank")
	}
	return Name{value: name}, nil
}

// String returns the name string.
func (n Name) String() string {
	return n.value
}

// Phone represents a phone number value object.
type Phone struct {
	value string
}

// NewPhone creates a new phone number value object.
func NewPhone(phone string) (Phone, error) {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return Phone{}, NewValidationError("phone", "Phone numbers should only contain numbers, and it should be at least 3 digits long")
	}
	return Phone{value: phone}, nil
}

// String returns the phone number string.
func (p Phone) String() string {
	return p.value
}

// Email represents an email address value object.
type Email struct {
	value string
}

// NewEmail creates a new email address value object.
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return Email{}, NewValidationError("email", "Emails should be of the format local-part@domain")
	}
	return Email{value: email}, nil
}

// String returns the email address string.
func (e Email) String() string {
	return e.value
}

// Address represents a postal address value object.
type Address struct {
	value string
}

// NewAddress creates a new address value object.
func NewAddress(address string) (Address, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Address{}, NewValidationError("address", "Addresses can take any values, and it should not be blank")
	}
	return Address{value: address}, nil
}

// String returns the address string.
func (a Address) String() string {
	return a.value
}

// YearJoined represents the year an employee joined.
type YearJoined struct {
	value int
}

// NewYearJoined creates a new year joined value object.
func NewYearJoined(year int) (YearJoined, error) {
	if year < 1000 || year > 9999 {
		return YearJoined{}, NewValidationError("year", "Year joined should be a four digit year")
	}
	return YearJoined{value: year}, nil
}

// ParseYearJoined parses a four digit year.
func ParseYearJoined(yearStr string) (YearJoined, error) {
	year, err := parseInt(strings.TrimSpace(yearStr))
	if err != nil {
		return YearJoined{}, NewValidationError("year", "Year joined should be a four digit year")
	}
	return NewYearJoined(year)
}

// Int returns the integer value.
func (y YearJoined) Int() int {
	return y.value
}

// String returns the year string.
func (y YearJoined) String() string {
	return strconv.Itoa(y.value)
}

// Tag represents a tag value object.
type Tag struct {
	value string
}

// NewTag creates a new tag value object.
func NewTag(tag string) (Tag, error) {
	tag = strings.TrimSpace(tag)
	if !tagPattern.MatchString(tag) {
		return Tag{}, NewValidationError("tag", "Tags names should be alphanumeric")
	}
	return Tag{value: tag}, nil
}

// NewTags creates tag value objects from raw strings, preserving order.
func NewTags(tags []string) ([]Tag, error) {
	result := make([]Tag, 0, len(tags))
	for _, raw := range tags {
		tag, err := NewTag(raw)
		if err != nil {
			return nil, err
		}
		result = append(result, tag)
	}
	return result, nil
}

// String returns the tag string.
func (t Tag) String() string {
	return t.value
}

// parseInt converts a string to an integer and handles errors.
func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
