package openapi_server

import "github.com/natevvv/osm-campus-routing/pkg/campus"

type Building struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Abbrev   string `json:"abbrev,omitempty"`
	Location Point  `json:"location"`
}

func NewBuilding(b campus.Building) Building {
	return Building{
		ID:       b.Coordinate.ID,
		FullName: b.FullName,
		Abbrev:   b.Abbrev,
		Location: NewPointFromGeometry(b.Coordinate.Point),
	}
}

// BuildingMatch is a resolved building query.
type BuildingMatch struct {
	Query    string   `json:"query"`
	Match    string   `json:"match"`
	Building Building `json:"building"`
}
