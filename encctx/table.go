package encctx

import "fmt"

// StandardNamespaceURI is the well-known URI every NamespaceTable carries
// at index 0, per OPC UA Part 6's namespace array convention.
const StandardNamespaceURI = "http://opcfoundation.org/UA/"

// NamespaceTable is a slice-backed implementation of codec.NamespaceTable:
// index 0 is always the standard OPC UA namespace URI, and every further
// entry is appended in registration order the way a session's
// NamespaceArray grows as the server advertises more namespaces.
type NamespaceTable struct {
	uris []string
}

// NewNamespaceTable returns a table with only the reserved index-0 entry
// populated.
func NewNamespaceTable() *NamespaceTable {
	return &NamespaceTable{uris: []string{StandardNamespaceURI}}
}

// Add appends uri and returns the index it was assigned.
func (t *NamespaceTable) Add(uri string) uint16 {
	t.uris = append(t.uris, uri)
	return uint16(len(t.uris) - 1)
}

// Set assigns uri to a specific index, growing the table with empty
// placeholders if needed. Index 0 is reserved and cannot be overwritten.
func (t *NamespaceTable) Set(index uint16, uri string) error {
	if index == 0 {
		return fmt.Errorf("%w: %d", ErrReservedNamespace, index)
	}
	for uint16(len(t.uris)) <= index {
		t.uris = append(t.uris, "")
	}
	t.uris[index] = uri
	return nil
}

// URI implements codec.NamespaceTable.
func (t *NamespaceTable) URI(index uint16) (string, bool) {
	if int(index) >= len(t.uris) {
		return "", false
	}
	uri := t.uris[index]
	return uri, uri != ""
}

// Len returns the number of entries, including the reserved index 0.
func (t *NamespaceTable) Len() int { return len(t.uris) }

// URIs returns a copy of the table contents in index order, for the
// debug console's /context probe.
func (t *NamespaceTable) URIs() []string {
	out := make([]string, len(t.uris))
	copy(out, t.uris)
	return out
}

// ServerTable is the ServerIndex analogue of NamespaceTable: index 0 is
// reserved for the local server's own URI (the server encoding the
// message), and further entries are assigned to remote servers an
// ExpandedNodeId can point at.
type ServerTable struct {
	uris []string
}

// NewServerTable returns a table whose index 0 is localServerURI.
func NewServerTable(localServerURI string) *ServerTable {
	return &ServerTable{uris: []string{localServerURI}}
}

// Add appends uri and returns the index it was assigned.
func (t *ServerTable) Add(uri string) uint32 {
	t.uris = append(t.uris, uri)
	return uint32(len(t.uris) - 1)
}

// ServerURI implements codec.ServerTable.
func (t *ServerTable) ServerURI(index uint32) (string, bool) {
	if int(index) >= len(t.uris) {
		return "", false
	}
	uri := t.uris[index]
	return uri, uri != ""
}

// URIs returns a copy of the table contents in index order.
func (t *ServerTable) URIs() []string {
	out := make([]string, len(t.uris))
	copy(out, t.uris)
	return out
}
