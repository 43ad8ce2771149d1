package builtin

// Argument is the standard OPC UA structure describing one input or output
// parameter of a Method node. It is used here to exercise the
// structure-dispatch machinery against a real, recognizable OPC UA type
// rather than an invented placeholder.
type Argument struct {
	Name            string
	DataType        NodeId
	ValueRank       int32
	ArrayDimensions []uint32
	Description     LocalizedText
}

// ArgumentEncodingTypeId is the NodeId of the Argument structure's JSON
// encoding, per the OPC UA namespace-0 numeric identifier assignment
// (ns=0;i=298 is the Argument_Encoding_DefaultJson NodeId).
var ArgumentEncodingTypeId = NumericNodeId(0, 298)
