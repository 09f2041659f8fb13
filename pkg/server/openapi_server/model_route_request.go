// SPDX-License-Identifier: MIT

package openapi_server

// RouteRequest asks for a walking route between two buildings, each given as
// an abbreviation, a full name or a partial name.
type RouteRequest struct {
	Start       string `json:"start"`
	Destination string `json:"destination"`
}

// AssertRouteRequestRequired checks if the required fields are not zero-ed
func AssertRouteRequestRequired(obj RouteRequest) error {
	elements := map[string]interface{}{
		"start":       obj.Start,
		"destination": obj.Destination,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}

// CoordinateRouteRequest asks for a walking route between two arbitrary
// positions.
type CoordinateRouteRequest struct {
	Origin      *Point `json:"origin" validate:"required"`
	Destination *Point `json:"destination" validate:"required"`
}

// AssertCoordinateRouteRequestRequired checks if the required fields are not zero-ed
func AssertCoordinateRouteRequestRequired(obj CoordinateRouteRequest) error {
	if obj.Origin == nil {
		return &RequiredError{Field: "origin"}
	}
	if obj.Destination == nil {
		return &RequiredError{Field: "destination"}
	}
	return nil
}
