package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opcua-json/opcuajson/builtin"
	"github.com/opcua-json/opcuajson/codec"
)

func TestDiagnosticInfoAllUnsetIsEmptyObject(t *testing.T) {
	di := builtin.DiagnosticInfo{
		SymbolicId:       builtin.UnsetIndex,
		NamespaceUri:     builtin.UnsetIndex,
		Locale:           builtin.UnsetIndex,
		LocalizedTextIdx: builtin.UnsetIndex,
	}
	assert.JSONEq(t, `{}`, encodeWithCtx(t, nil, true, func(e *codec.Encoder) error {
		return e.DiagnosticInfo(di)
	}))
}

func TestDiagnosticInfoIndicesAndAdditionalInfo(t *testing.T) {
	info := "extra context"
	di := builtin.DiagnosticInfo{
		SymbolicId:       3,
		NamespaceUri:     builtin.UnsetIndex,
		Locale:           builtin.UnsetIndex,
		LocalizedTextIdx: builtin.UnsetIndex,
		AdditionalInfo:   &info,
	}
	assert.JSONEq(t, `{"SymbolicId":3,"AdditionalInfo":"extra context"}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.DiagnosticInfo(di) }))
}

func TestDiagnosticInfoInnerStatusCodePresentEvenWhenGood(t *testing.T) {
	good := builtin.Good
	di := builtin.DiagnosticInfo{
		SymbolicId:       builtin.UnsetIndex,
		NamespaceUri:     builtin.UnsetIndex,
		Locale:           builtin.UnsetIndex,
		LocalizedTextIdx: builtin.UnsetIndex,
		InnerStatusCode:  &good,
	}
	assert.JSONEq(t, `{"InnerStatusCode":0}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.DiagnosticInfo(di) }))
}

func TestDiagnosticInfoNestsInnerDiagnosticInfo(t *testing.T) {
	inner := builtin.DiagnosticInfo{
		SymbolicId:       1,
		NamespaceUri:     builtin.UnsetIndex,
		Locale:           builtin.UnsetIndex,
		LocalizedTextIdx: builtin.UnsetIndex,
	}
	outer := builtin.DiagnosticInfo{
		SymbolicId:          builtin.UnsetIndex,
		NamespaceUri:        builtin.UnsetIndex,
		Locale:              builtin.UnsetIndex,
		LocalizedTextIdx:    builtin.UnsetIndex,
		InnerDiagnosticInfo: &inner,
	}
	assert.JSONEq(t, `{"InnerDiagnosticInfo":{"SymbolicId":1}}`,
		encodeWithCtx(t, nil, true, func(e *codec.Encoder) error { return e.DiagnosticInfo(outer) }))
}
