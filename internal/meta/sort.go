package meta

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator orders names the way a user expects from ls: case-insensitive,
// locale-aware rather than byte order.
var collator = collate.New(language.Und, collate.IgnoreCase)

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return collator.CompareString(entries[i].Name, entries[j].Name) < 0
	})
}
