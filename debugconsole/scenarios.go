package debugconsole

import (
	"time"

	"github.com/opcua-json/opcuajson/builtin"
	"github.com/opcua-json/opcuajson/codec"
)

// scenario produces a value to run through the encoder.
type scenario struct {
	// Description explains what the scenario demonstrates, surfaced in
	// /context and in the OpenAPI docs.
	Description string
	// Build returns the value to encode.
	Build func() any
}

// scenarios is the fixed set of named demonstrations the /encode endpoint
// can run. Keys are what a caller passes as EncodeRequest.Scenario.
var scenarios = map[string]scenario{
	"nodeid-numeric": {
		Description: "a numeric NodeId in namespace 0",
		Build: func() any {
			return builtin.NumericNodeId(0, 2256)
		},
	},
	"nodeid-string": {
		Description: "a string NodeId in a non-zero namespace",
		Build: func() any {
			return builtin.StringNodeId(2, "Temperature.Sensor1")
		},
	},
	"variant-scalar": {
		Description: "a scalar Int32 Variant",
		Build: func() any {
			return builtin.ScalarVariant(builtin.TypeInt32, int32(42))
		},
	},
	"variant-array": {
		Description: "an array-of-Double Variant",
		Build: func() any {
			return builtin.ArrayVariant(builtin.TypeDouble, []any{1.5, 2.25, 3.0})
		},
	},
	"variant-matrix": {
		Description: "a 2x3 Int32 matrix Variant, flattened or nested by mode",
		Build: func() any {
			return builtin.MatrixVariant(builtin.Matrix{
				ElementType: builtin.TypeInt32,
				Dimensions:  []uint32{2, 3},
				Elements:    []any{int32(0), int32(2), int32(3), int32(1), int32(3), int32(4)},
			})
		},
	},
	"datavalue": {
		Description: "a DataValue with a Good status and a source timestamp",
		Build: func() any {
			v := builtin.ScalarVariant(builtin.TypeInt32, int32(7))
			ts := builtin.NewDateTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
			return builtin.DataValue{
				Value:           &v,
				Status:          builtin.Good,
				SourceTimestamp: &ts,
			}
		},
	},
	"statuscode-bad": {
		Description: "a Bad_NodeIdUnknown StatusCode",
		Build: func() any {
			return builtin.StatusCode(0x80340000)
		},
	},
	"read-request": {
		Description: "a ReadRequest message wrapped in its TypeId envelope",
		Build: func() any {
			return codec.Message{
				TypeId: builtin.ReadRequestEncodingTypeId,
				Body: builtin.ReadRequest{
					NodesToRead: []builtin.ReadValueId{
						{NodeIdVal: builtin.NumericNodeId(0, 2256), AttributeId: 13},
					},
				},
			}
		},
	},
}
