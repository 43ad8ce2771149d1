package debugconsole

import (
	"net/http"

	"rivaas.dev/router"

	"github.com/opcua-json/opcuajson/encctx"
)

// ContextResponse describes the encoding context the console is serving
// with, plus the scenario catalogue /encode accepts.
type ContextResponse struct {
	Config    encctx.Config     `json:"config"`
	Scenarios map[string]string `json:"scenarios"`
}

func handleContext(opts Options) router.HandlerFunc {
	descriptions := make(map[string]string, len(scenarios))
	for name, sc := range scenarios {
		descriptions[name] = sc.Description
	}
	return func(c *router.Context) {
		c.JSON(http.StatusOK, ContextResponse{
			Config:    opts.Config,
			Scenarios: descriptions,
		})
	}
}
