// Package jsontoken implements a minimal, allocation-conscious JSON token
// writer: the leaf layer of the OPC UA JSON encoding engine.
//
// A Writer tracks a stack of container contexts (object, array, or the bare
// top-level slot) and exposes Begin/End pairs for objects and arrays, a Name
// method for object keys, and a family of Value* methods for JSON leaf
// values. It enforces two rules from RFC 7159: a Name is only legal
// immediately inside an object, and a value with no preceding Name is
// illegal inside an object. Commas and colons are inserted automatically;
// callers never write raw JSON punctuation.
//
// The writer does not know anything about OPC UA; the codec package builds
// the typed Part 6 emitters on top of it.
package jsontoken
