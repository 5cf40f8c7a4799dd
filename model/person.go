package model

import (
	"fmt"
	"slices"
	"strings"
)

// Person は従業員の連絡先を表すモデルです。
// 生成後は変更されません。編集は常に新しいPersonを生成します。
type Person struct {
	// 識別フィールド: どれか一つが一致すれば同一人物とみなす
	id    PersonID
	phone Phone
	email Email

	// データフィールド
	name       Name
	yearJoined YearJoined
	address    Address
	tags       []Tag
}

// NewPerson はPersonの新しいインスタンスを作成します。
// tagsはコピーして保持します。
func NewPerson(id PersonID, name Name, phone Phone, email Email, address Address, yearJoined YearJoined, tags []Tag) (*Person, error) {
	p := &Person{
		id:         id,
		name:       name,
		phone:      phone,
		email:      email,
		address:    address,
		yearJoined: yearJoined,
		tags:       slices.Clone(tags),
	}
	if p.tags == nil {
		p.tags = []Tag{}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadPerson は保存済みの生の値からPersonを復元します。
func LoadPerson(id int, name, phone, email, address string, yearJoined int, tags []string) (*Person, error) {
	personID, err := NewPersonID(id)
	if err != nil {
		return nil, err
	}
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	ph, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}
	em, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	addr, err := NewAddress(address)
	if err != nil {
		return nil, err
	}
	year, err := NewYearJoined(yearJoined)
	if err != nil {
		return nil, err
	}
	tagValues, err := NewTags(tags)
	if err != nil {
		return nil, err
	}
	return NewPerson(personID, n, ph, em, addr, year, tagValues)
}

// Validate はPersonのデータバリデーションを行います。
func (p *Person) Validate() error {
	// 値オブジェクトのゼロ値はコンストラクタを経由していない
	if p.id.Int() <= 0 {
		return NewValidationError("id", "id is required")
	}
	if p.name.String() == "" {
		return NewValidationError("name", "name is required")
	}
	if p.phone.String() == "" {
		return NewValidationError("phone", "phone is required")
	}
	if p.email.String() == "" {
		return NewValidationError("email", "email is required")
	}
	if p.address.String() == "" {
		return NewValidationError("address", "address is required")
	}
	if p.yearJoined.Int() == 0 {
		return NewValidationError("year", "year joined is required")
	}

	// タグの重複は許可しない
	for i, tag := range p.tags {
		if tag.String() == "" {
			return NewValidationError("tag", "tag cannot be empty")
		}
		if slices.Contains(p.tags[:i], tag) {
			return NewValidationError("tag", fmt.Sprintf("duplicate tag: %s", tag))
		}
	}
	return nil
}

// ID はIDを返します。
func (p *Person) ID() PersonID { return p.id }

// Name は名前を返します。
func (p *Person) Name() Name { return p.name }

// Phone は電話番号を返します。
func (p *Person) Phone() Phone { return p.phone }

// Email はメールアドレスを返します。
func (p *Person) Email() Email { return p.email }

// Address は住所を返します。
func (p *Person) Address() Address { return p.address }

// YearJoined は入社年を返します。
func (p *Person) YearJoined() YearJoined { return p.yearJoined }

// Tags はタグ一覧のコピーを返します。
func (p *Person) Tags() []Tag {
	return slices.Clone(p.tags)
}

// TagStrings はタグ一覧を文字列として返します。
func (p *Person) TagStrings() []string {
	result := make([]string, len(p.tags))
	for i, tag := range p.tags {
		result[i] = tag.String()
	}
	return result
}

// IsSamePerson はID・電話番号・メールアドレスのいずれかが一致する場合にtrueを返します。
// 重複検出に使う弱い同一性です。
func (p *Person) IsSamePerson(other *Person) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return other.id == p.id ||
		other.phone == p.phone ||
		other.email == p.email
}

// Equals はすべてのフィールドが一致する場合にtrueを返します。
// タグは順序も含めて比較します。
func (p *Person) Equals(other *Person) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.id == other.id &&
		p.name == other.name &&
		p.phone == other.phone &&
		p.email == other.email &&
		p.address == other.address &&
		p.yearJoined == other.yearJoined &&
		slices.Equal(p.tags, other.tags)
}

// Format はユーザー向けの表示文字列を返します。
func Format(p *Person) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; ID: %s; Phone: %s; Email: %s; Address: %s; Year Joined: %s; Tags: ",
		p.name, p.id, p.phone, p.email, p.address, p.yearJoined)
	for _, tag := range p.tags {
		fmt.Fprintf(&b, "[%s]", tag)
	}
	return b.String()
}

// String はデバッグ用の表現を返します。
func (p *Person) String() string {
	return fmt.Sprintf("Person{id=%s, name=%s, phone=%s, email=%s, address=%s, yearJoined=%s, tags=%v}",
		p.id, p.name, p.phone, p.email, p.address, p.yearJoined, p.TagStrings())
}
