// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/authors/pkg/pointer"
)

// Gender values accepted for an author.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Field names used in validation details.
const (
	FieldName    = "name"
	FieldGender  = "gender"
	FieldCountry = "country"
)

// MsgNoChange is returned when an update leaves every field as it was.
const MsgNoChange = "At least one value must change"

// Author is a writer record.
type Author struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Country string `json:"country"`
}

// CreateInput carries the fields of a new author. All are required.
type CreateInput struct {
	Name    string `json:"name"    validate:"required,notblank,max=255"`
	Gender  string `json:"gender"  validate:"required,notblank,max=255,oneof=male female"`
	Country string `json:"country" validate:"required,notblank,max=255"`
}

// UpdateInput carries a partial update. A nil field is left untouched;
// a present field obeys the same rules as on create.
type UpdateInput struct {
	Name    *string `json:"name"    validate:"omitnil,notblank,max=255"`
	Gender  *string `json:"gender"  validate:"omitnil,notblank,max=255,oneof=male female"`
	Country *string `json:"country" validate:"omitnil,notblank,max=255"`
}

// Normalize rewrites every string to Unicode NFC so that canonically
// equivalent spellings are stored and compared identically.
func (input *CreateInput) Normalize() {
	input.Name = norm.NFC.String(input.Name)
	input.Gender = norm.NFC.String(input.Gender)
	input.Country = norm.NFC.String(input.Country)
}

// Normalize rewrites every present string to Unicode NFC.
func (input *UpdateInput) Normalize() {
	for _, field := range []*string{input.Name, input.Gender, input.Country} {
		if field != nil {
			*field = norm.NFC.String(*field)
		}
	}
}

// Author builds the record to be inserted.
func (input CreateInput) Author() *Author {
	return &Author{Name: input.Name, Gender: input.Gender, Country: input.Country}
}

// Apply returns a copy of a with the present fields of input written over it.
func (a Author) Apply(input UpdateInput) Author {
	a.Name = pointer.Fallback(input.Name, a.Name)
	a.Gender = pointer.Fallback(input.Gender, a.Gender)
	a.Country = pointer.Fallback(input.Country, a.Country)
	return a
}

// Differs reports whether any persisted field of a and other differs.
func (a Author) Differs(other Author) bool {
	return a.Name != other.Name || a.Gender != other.Gender || a.Country != other.Country
}
