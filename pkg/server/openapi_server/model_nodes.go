package openapi_server

type Nodes struct {
	Waypoints []Point `json:"waypoints"`
}

type Stats struct {
	Nodes     int `json:"nodes"`
	Footways  int `json:"footways"`
	Buildings int `json:"buildings"`
	Vertices  int `json:"vertices"`
	Edges     int `json:"edges"`
}
