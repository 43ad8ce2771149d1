package debugconsole

import (
	"net/http"

	"rivaas.dev/openapi"
	"rivaas.dev/router"
)

// registerDocs builds the OpenAPI document for the console's three routes
// and serves it at the spec path (/openapi.json).
func registerDocs(r *router.Router) error {
	cfg := openapi.MustNew(
		openapi.WithTitle("opcuajson debug console", "1.0.0"),
		openapi.WithDescription("Interactive harness for the OPC UA JSON encoder: run named encoding scenarios, inspect the encoding context, and stream synthetic DataValue notifications."),
	)

	manager := openapi.NewManager(cfg)

	manager.Register(http.MethodPost, "/encode").
		Doc("Encode a scenario", "Runs one named scenario through the encoder in the requested mode and returns the raw JSON it produced.").
		Request(EncodeRequest{}).
		Response(http.StatusOK, EncodeResponse{}).
		Response(http.StatusNotFound, errorResponse{}).
		Tags("encoding")

	manager.Register(http.MethodGet, "/context").
		Doc("Inspect the encoding context", "Returns the active namespace/server tables, resource limits, and the scenario catalogue.").
		Response(http.StatusOK, ContextResponse{}).
		Tags("context")

	manager.Register(http.MethodGet, "/stream").
		Doc("Stream DataValue notifications", "Pushes reversible-mode DataValue encodings over server-sent events until the client disconnects.").
		Tags("encoding")

	spec, etag, err := manager.GenerateSpec()
	if err != nil {
		return err
	}

	r.GET(manager.SpecPath(), func(c *router.Context) {
		c.Header("ETag", etag)
		c.Data(http.StatusOK, "application/json", spec)
	})

	return nil
}
