package builtin

// ApplicationType is the standard OPC UA enumeration describing the role an
// application plays: server, client, both, or a discovery server. Used to
// exercise the enumeration half of structure/enumeration dispatch.
type ApplicationType int32

const (
	ApplicationTypeServer          ApplicationType = 0
	ApplicationTypeClient          ApplicationType = 1
	ApplicationTypeClientAndServer ApplicationType = 2
	ApplicationTypeDiscoveryServer ApplicationType = 3
)

var applicationTypeNames = map[ApplicationType]string{
	ApplicationTypeServer:          "Server",
	ApplicationTypeClient:          "Client",
	ApplicationTypeClientAndServer: "ClientAndServer",
	ApplicationTypeDiscoveryServer: "DiscoveryServer",
}

// Name returns the enumeration member's declared name, used to build the
// "Name_Value" non-reversible encoding (OPC UA Part 6).
func (a ApplicationType) Name() string {
	if name, ok := applicationTypeNames[a]; ok {
		return name
	}
	return ""
}
