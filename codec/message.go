package codec

import "github.com/opcua-json/opcuajson/builtin"

// Message is the top-level envelope a request/response/notification body
// is wrapped in when sent as a stand-alone JSON document (OPC UA Part 6):
// the message's own structure encoding NodeId under "TypeId", and the
// structure body itself under "Body".
type Message struct {
	TypeId builtin.NodeId
	Body   any
}

// EncodeMessage writes msg as {"TypeId":{...},"Body":{...}}, resolving
// msg.TypeId through the Context's DataTypeManager the same way
// StructureExtensionObject does.
func (e *Encoder) EncodeMessage(msg Message) error {
	if err := e.wrapTokenErr("Message", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := e.NodeIdKeyed("TypeId", msg.TypeId); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Message", e.tokens.Name("Body")); err != nil {
		return err
	}
	if err := e.EncodeStructure(msg.TypeId, msg.Body); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Message", e.tokens.EndObject()); err != nil {
		return err
	}
	return e.Close()
}
