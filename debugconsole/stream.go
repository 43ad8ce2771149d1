package debugconsole

import (
	"fmt"
	"net/http"
	"time"

	"rivaas.dev/router"

	"github.com/opcua-json/opcuajson/builtin"
)

// handleStream pushes a synthetic DataValue notification over server-sent
// events at the configured interval, each encoded in reversible mode, until
// the client disconnects. It is the streaming counterpart of /encode's
// one-shot form.
func handleStream(opts Options) router.HandlerFunc {
	reg := opts.registry()
	interval := opts.streamInterval()
	return func(c *router.Context) {
		flusher, ok := c.Response.(http.Flusher)
		if !ok {
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "streaming unsupported by connection"})
			return
		}

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-store")
		c.Status(http.StatusOK)
		flusher.Flush()

		ectx := opts.Config.Context(reg)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var seq int32
		for {
			select {
			case <-c.Request.Context().Done():
				return
			case <-ticker.C:
				seq++
				out, err := encodeScenario(ectx, true, sampleDataValue(seq))
				if err != nil {
					return
				}
				if _, err := fmt.Fprintf(c.Response, "data: %s\n\n", out); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// sampleDataValue fabricates the notification payload for one tick.
func sampleDataValue(seq int32) builtin.DataValue {
	v := builtin.ScalarVariant(builtin.TypeInt32, seq)
	ts := builtin.NewDateTime(time.Now().UTC())
	return builtin.DataValue{Value: &v, SourceTimestamp: &ts}
}
