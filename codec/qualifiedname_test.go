package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opcua-json/opcuajson/builtin"
	"github.com/opcua-json/opcuajson/codec"
	"github.com/opcua-json/opcuajson/encctx"
)

func TestQualifiedNameNamespaceZeroOmitted(t *testing.T) {
	q := builtin.QualifiedName{NamespaceIndex: 0, Name: "Temperature"}
	assert.JSONEq(t, `{"Name":"Temperature"}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.QualifiedName(q) }))
}

func TestQualifiedNameNonReversibleResolvesURI(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	idx := ns.Add("http://example.org/UA/")
	reg := codec.NewRegistry()
	ctx := encctx.NewContext(ns, encctx.NewServerTable(""), reg, codec.Limits{})

	q := builtin.QualifiedName{NamespaceIndex: idx, Name: "Temperature"}
	assert.JSONEq(t, `{"Name":"Temperature","Uri":"http://example.org/UA/"}`,
		encodeWithCtx(t, ctx, false, func(e *codec.Encoder) error { return e.QualifiedName(q) }))
}

func TestQualifiedNameNamespaceOneStaysNumeric(t *testing.T) {
	ns := encctx.NewNamespaceTable()
	ns.Set(1, "urn:whatever")
	reg := codec.NewRegistry()
	ctx := encctx.NewContext(ns, encctx.NewServerTable(""), reg, codec.Limits{})

	q := builtin.QualifiedName{NamespaceIndex: 1, Name: "Foo"}
	assert.JSONEq(t, `{"Name":"Foo","Uri":1}`,
		encodeWithCtx(t, ctx, false, func(e *codec.Encoder) error { return e.QualifiedName(q) }))
}

func TestLocalizedTextReversibleBothFields(t *testing.T) {
	lt := builtin.NewLocalizedText("en", "Temperature")
	assert.JSONEq(t, `{"Locale":"en","Text":"Temperature"}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.LocalizedText(lt) }))
}

func TestLocalizedTextReversibleTextOnly(t *testing.T) {
	lt := builtin.TextOnly("Temperature")
	assert.JSONEq(t, `{"Text":"Temperature"}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.LocalizedText(lt) }))
}

func TestLocalizedTextReversibleEmptyIsEmptyObject(t *testing.T) {
	assert.JSONEq(t, `{}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.LocalizedText(builtin.LocalizedText{}) }))
}

func TestLocalizedTextNonReversibleDropsLocale(t *testing.T) {
	lt := builtin.NewLocalizedText("en", "Temperature")
	assert.Equal(t, `"Temperature"`,
		encodeWithCtx(t, nil, false, func(e *codec.Encoder) error { return e.LocalizedText(lt) }))
}

func TestLocalizedTextNonReversibleNilTextIsEmptyString(t *testing.T) {
	assert.Equal(t, `""`,
		encodeWithCtx(t, nil, false, func(e *codec.Encoder) error { return e.LocalizedText(builtin.LocalizedText{}) }))
}
