// Package model defines the domain vocabulary shared by handlers, forms and
// seed data: park types, trail difficulties and biodiversity categories.
package model

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Park type classifications.
const (
	ParkTypeNational  = "Nacional"
	ParkTypeState     = "Estadual"
	ParkTypeMunicipal = "Municipal"
)

// ParkTypes contains all valid park type classifications.
var ParkTypes = []string{ParkTypeNational, ParkTypeState, ParkTypeMunicipal}

// Trail difficulty ratings. The canonical spellings carry accents; public
// filter input is normalized against them via NormalizeDifficulty.
const (
	DifficultyEasy     = "fácil"
	DifficultyModerate = "moderada"
	DifficultyHard     = "difícil"
)

// Difficulties contains all valid trail difficulty ratings.
var Difficulties = []string{DifficultyEasy, DifficultyModerate, DifficultyHard}

// Biodiversity item categories.
const (
	BiodiversityFauna = "fauna"
	BiodiversityFlora = "flora"
)

// BiodiversityTypes contains all valid biodiversity categories.
var BiodiversityTypes = []string{BiodiversityFauna, BiodiversityFlora}

// IsValidParkType reports whether t is a recognized park type.
func IsValidParkType(t string) bool {
	return contains(ParkTypes, t)
}

// IsValidDifficulty reports whether d is a canonical difficulty spelling.
func IsValidDifficulty(d string) bool {
	return contains(Difficulties, d)
}

// IsValidBiodiversityType reports whether t is a recognized biodiversity category.
func IsValidBiodiversityType(t string) bool {
	return contains(BiodiversityTypes, t)
}

// NormalizeDifficulty maps user input to the canonical accented difficulty
// spelling. Both the accented form and its ASCII transliteration are accepted
// ("facil" and "fácil" both normalize to "fácil"). Returns false for
// unrecognized values so callers can skip the filter silently.
func NormalizeDifficulty(input string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}

	for _, canonical := range Difficulties {
		if in == canonical || in == unidecode.Unidecode(canonical) {
			return canonical, true
		}
	}
	return "", false
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
