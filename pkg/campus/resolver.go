package campus

import (
	"errors"
	"sort"
	"strings"

	"github.com/natevvv/osm-campus-routing/pkg/slice"
)

var ErrBuildingNotFound = errors.New("building not found")

// Match tells which rule resolved a building query.
type Match int

const (
	NoMatch Match = iota
	AbbrevMatch
	FullNameMatch
	PartialMatch
)

func (m Match) String() string {
	return []string{"none", "abbreviation", "full name", "partial"}[m]
}

// BuildingIndex resolves building queries. Buildings are kept ordered by
// full name (then abbreviation); partial matches are tried in that order and
// the first hit wins.
type BuildingIndex struct {
	buildings []Building
	byAbbrev  map[string]int
	byName    map[string]int
}

func NewBuildingIndex(buildings []Building) *BuildingIndex {
	sorted := make([]Building, len(buildings))
	copy(sorted, buildings)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FullName != sorted[j].FullName {
			return sorted[i].FullName < sorted[j].FullName
		}
		return sorted[i].Abbrev < sorted[j].Abbrev
	})

	bi := &BuildingIndex{
		buildings: sorted,
		byAbbrev:  make(map[string]int, len(sorted)),
		byName:    make(map[string]int, len(sorted)),
	}
	for i, b := range sorted {
		// on duplicates the first building in index order wins
		if _, ok := bi.byAbbrev[b.Abbrev]; b.Abbrev != "" && !ok {
			bi.byAbbrev[b.Abbrev] = i
		}
		if _, ok := bi.byName[b.FullName]; !ok {
			bi.byName[b.FullName] = i
		}
	}
	return bi
}

// Resolve returns the building for the query. It tries an exact abbreviation
// match, an exact full name match and finally the first building whose full
// name shares a word with the query (words compared case-insensitively).
func (bi *BuildingIndex) Resolve(query string) (Building, error) {
	b, _, err := bi.ResolveMatch(query)
	return b, err
}

// ResolveMatch works like Resolve and also reports the rule which matched.
func (bi *BuildingIndex) ResolveMatch(query string) (Building, Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Building{}, NoMatch, ErrBuildingNotFound
	}
	if i, ok := bi.byAbbrev[query]; ok {
		return bi.buildings[i], AbbrevMatch, nil
	}
	if i, ok := bi.byName[query]; ok {
		return bi.buildings[i], FullNameMatch, nil
	}

	queryWords := words(query)
	for _, b := range bi.buildings {
		if slice.Intersects(queryWords, words(b.FullName)) {
			return b, PartialMatch, nil
		}
	}
	return Building{}, NoMatch, ErrBuildingNotFound
}

// Buildings returns the indexed buildings in index order.
func (bi *BuildingIndex) Buildings() []Building {
	buildings := make([]Building, len(bi.buildings))
	copy(buildings, bi.buildings)
	return buildings
}

func (bi *BuildingIndex) Len() int { return len(bi.buildings) }

func words(s string) []string {
	return strings.Fields(strings.ToLower(s))
}
