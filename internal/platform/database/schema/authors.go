// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// AuthorsTable represents the 'authors' table
type AuthorsTable struct {
	Table     string
	ID        string
	Name      string
	Gender    string
	Country   string
	CreatedAt string
	UpdatedAt string
}

// Authors is the schema definition for authors
var Authors = AuthorsTable{
	Table:     "authors",
	ID:        "id",
	Name:      "name",
	Gender:    "gender",
	Country:   "country",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Projection lists the columns that make up the public author record, in scan order.
func (t AuthorsTable) Projection() string {
	return t.ID + ", " + t.Name + ", " + t.Gender + ", " + t.Country
}
