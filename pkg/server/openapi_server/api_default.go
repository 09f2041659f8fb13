package openapi_server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// DefaultApiController binds http requests to an api service and writes the service results to the http response
type DefaultApiController struct {
	service      DefaultApiServicer
	errorHandler ErrorHandler
}

// DefaultApiOption for how the controller is set up.
type DefaultApiOption func(*DefaultApiController)

// WithDefaultApiErrorHandler inject ErrorHandler into controller
func WithDefaultApiErrorHandler(h ErrorHandler) DefaultApiOption {
	return func(c *DefaultApiController) {
		c.errorHandler = h
	}
}

// NewDefaultApiController creates a default api controller
func NewDefaultApiController(s DefaultApiServicer, opts ...DefaultApiOption) Router {
	controller := &DefaultApiController{
		service:      s,
		errorHandler: DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all of the api route for the DefaultApiController
func (c *DefaultApiController) Routes() Routes {
	return Routes{
		{
			"ComputeRoute",
			strings.ToUpper("Post"),
			"/routes",
			c.ComputeRoute,
		},
		{
			"ComputeCoordinateRoute",
			strings.ToUpper("Post"),
			"/routes/coordinates",
			c.ComputeCoordinateRoute,
		},
		{
			"GetBuildings",
			strings.ToUpper("Get"),
			"/buildings",
			c.GetBuildings,
		},
		{
			"ResolveBuilding",
			strings.ToUpper("Get"),
			"/buildings/{query}",
			c.ResolveBuilding,
		},
		{
			"GetNearestNode",
			strings.ToUpper("Get"),
			"/nearest",
			c.GetNearestNode,
		},
		{
			"GetNodes",
			strings.ToUpper("Get"),
			"/nodes",
			c.GetNodes,
		},
		{
			"GetStats",
			strings.ToUpper("Get"),
			"/stats",
			c.GetStats,
		},
	}
}

// ComputeRoute - Compute a route between two buildings
func (c *DefaultApiController) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	routeRequestParam := RouteRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&routeRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertRouteRequestRequired(routeRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), routeRequestParam)
	c.respond(w, r, "POST", result, err)
}

// ComputeCoordinateRoute - Compute a route between two positions
func (c *DefaultApiController) ComputeCoordinateRoute(w http.ResponseWriter, r *http.Request) {
	routeRequestParam := CoordinateRouteRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&routeRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertCoordinateRouteRequestRequired(routeRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.ComputeCoordinateRoute(r.Context(), routeRequestParam)
	c.respond(w, r, "POST", result, err)
}

func (c *DefaultApiController) GetBuildings(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetBuildings(r.Context())
	c.respond(w, r, "GET", result, err)
}

func (c *DefaultApiController) ResolveBuilding(w http.ResponseWriter, r *http.Request) {
	query := mux.Vars(r)["query"]
	result, err := c.service.ResolveBuilding(r.Context(), query)
	c.respond(w, r, "GET", result, err)
}

func (c *DefaultApiController) GetNearestNode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lat, err := parseFloatParameter(query.Get("lat"), "lat")
	if err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	lon, err := parseFloatParameter(query.Get("lon"), "lon")
	if err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.GetNearestNode(r.Context(), Point{Lat: lat, Lon: lon})
	c.respond(w, r, "GET", result, err)
}

func (c *DefaultApiController) GetNodes(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetNodes(r.Context())
	c.respond(w, r, "GET", result, err)
}

func (c *DefaultApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetStats(r.Context())
	c.respond(w, r, "GET", result, err)
}

func (c *DefaultApiController) respond(w http.ResponseWriter, r *http.Request, method string, result ImplResponse, err error) {
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", method)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func parseFloatParameter(param, name string) (float64, error) {
	if param == "" {
		return 0, &RequiredError{Field: name}
	}
	v, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return 0, &ParsingError{Err: err}
	}
	return v, nil
}
