package builtin

// ReadValueId selects one attribute of one node for a Read service call.
type ReadValueId struct {
	NodeIdVal   NodeId
	AttributeId uint32
	IndexRange  string
}

// ReadRequest asks a server for the current value of a set of attributes.
type ReadRequest struct {
	MaxAge             float64
	TimestampsToReturn int32
	NodesToRead        []ReadValueId
}

// ReadResponse carries one DataValue per requested ReadValueId, in
// request order.
type ReadResponse struct {
	Results []DataValue
}

// Encoding NodeIds for the Read service pair, from the OPC UA namespace-0
// identifier assignment.
var (
	ReadRequestEncodingTypeId  = NumericNodeId(0, 15257)
	ReadResponseEncodingTypeId = NumericNodeId(0, 15258)
)
