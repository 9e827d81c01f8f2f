// Package names derives athlete identity keys and the candidate names used
// to match athletes across datasets.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeySeparator joins the parts of an identity key.
const KeySeparator = ","

// LegacyKey derives the key of a legacy athlete: folded, lowercased name
// followed by the lowercased NOC.
func LegacyKey(f *Folder, name, noc string) string {
	return Key(f.Fold(name), noc)
}

// NewGamesKey derives the key of a new-games athlete. The display name is
// preferred; when it is empty the canonical name is converted from
// surname-first order.
func NewGamesKey(nameTV, name, countryCode string) string {
	if nameTV == "" {
		nameTV = SurnameLast(name)
	}
	return Key(nameTV, countryCode)
}

// Key lowercases each part and joins them in order.
func Key(parts ...string) string {
	lowered := make([]string, len(parts))
	for i, p := range parts {
		lowered[i] = strings.ToLower(p)
	}
	return strings.Join(lowered, KeySeparator)
}

// SurnameLast moves the last space-separated token to the front:
// "DUPONT Jean" becomes "Jean DUPONT".
func SurnameLast(name string) string {
	tokens := strings.Split(name, " ")
	last := len(tokens) - 1
	return strings.Join(append([]string{tokens[last]}, tokens[:last]...), " ")
}

// Title title-cases every word of s.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// Permutations returns every candidate full name for the given name tokens.
// Surname tokens are split on hyphens; when more than one results, every
// ordering of every non-empty subset is produced, each prefixed with the
// given name. Otherwise the tokens are returned joined.
func Permutations(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{""}
	}
	var surnames []string
	for _, t := range tokens[1:] {
		surnames = append(surnames, strings.Split(t, "-")...)
	}
	if len(surnames) <= 1 {
		return []string{strings.Join(tokens, " ")}
	}

	var out []string
	var permute func(cur, remaining []string)
	permute = func(cur, remaining []string) {
		if len(cur) > 0 {
			out = append(out, strings.Join(append([]string{tokens[0]}, cur...), " "))
		}
		for i := range remaining {
			rest := make([]string, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			permute(append(cur[:len(cur):len(cur)], remaining[i]), rest)
		}
	}
	permute(nil, surnames)
	return out
}

// Candidates returns the keys to look up for an identity key, in order.
// Without permutations the key itself is the only candidate.
func Candidates(key string, permute bool) []string {
	if !permute {
		return []string{key}
	}
	name, suffix, hasSuffix := strings.Cut(key, KeySeparator)
	perms := Permutations(strings.Split(name, " "))
	out := make([]string, len(perms))
	for i, p := range perms {
		if hasSuffix {
			p += KeySeparator + suffix
		}
		out[i] = p
	}
	return out
}
