// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "math/rand/v2"

var (
	fakeFirstNames = map[string][]string{
		GenderMale:   {"Gabriel", "Haruki", "Fyodor", "Chinua", "Jorge", "Italo", "Naguib", "Orhan", "Kazuo", "Mario"},
		GenderFemale: {"Jane", "Toni", "Virginia", "Chimamanda", "Clarice", "Isabel", "Wisława", "Banana", "Elena", "Zadie"},
	}
	fakeLastNames = []string{
		"Austen", "Morrison", "Woolf", "Adichie", "Lispector", "Allende", "Szymborska", "Yoshimoto", "Ferrante", "Smith",
		"Márquez", "Murakami", "Dostoevsky", "Achebe", "Borges", "Calvino", "Mahfouz", "Pamuk", "Ishiguro", "Vargas Llosa",
	}
	fakeCountries = []string{
		"Argentina", "Brazil", "Chile", "Colombia", "Egypt", "France", "Italy", "Japan", "Nigeria", "Peru",
		"Poland", "Russia", "Turkey", "United Kingdom", "United States",
	}
)

// Fake returns a random valid CreateInput drawn from rng.
func Fake(rng *rand.Rand) CreateInput {
	gender := GenderMale
	if rng.IntN(2) == 1 {
		gender = GenderFemale
	}

	firstNames := fakeFirstNames[gender]
	return CreateInput{
		Name:    firstNames[rng.IntN(len(firstNames))] + " " + fakeLastNames[rng.IntN(len(fakeLastNames))],
		Gender:  gender,
		Country: fakeCountries[rng.IntN(len(fakeCountries))],
	}
}
