package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSmartUnterminatedStringClosesAtEOF(t *testing.T) {
	out := ParseSmart(`{"a": "hello`)
	require.Len(t, out.Results, 1)
	obj := out.Results[0].ObjectValue()
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, "hello", v.StringValue())
	assert.False(t, out.OK)
}

func TestParseSmartNewlineInStringClosesWithoutConsumingIt(t *testing.T) {
	out := ParseSmart("[\"a\nb\"]")
	arr := out.Results[0].ArrayValue()
	require.Len(t, arr, 1)
	assert.Equal(t, "a", arr[0].StringValue())
	assert.False(t, out.OK)
	assert.Contains(t, out.Errors[0], "Newline in string")
}

func TestParseSmartUnescapedQuoteFollowedByCloserTerminatesString(t *testing.T) {
	out := ParseSmart(`{"html":"<div class=\"red\">hi</div>"}`)
	require.True(t, out.OK)
	obj := out.Results[0].ObjectValue()
	v, ok := obj.Get("html")
	require.True(t, ok)
	assert.Contains(t, v.StringValue(), "red")
}

func TestParseSmartUnescapedQuoteEmbeddedMidWordIsRecoveredLiterally(t *testing.T) {
	out := ParseSmart(`{"a": "she said "hi" to me"}`)
	obj := out.Results[0].ObjectValue()
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Contains(t, v.StringValue(), `"hi"`)
	assert.False(t, out.OK)
	found := false
	for _, e := range out.Errors {
		if containsAll(e, "Unescaped quote") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseSmartInvalidUnicodeEscapeEmitsRawText(t *testing.T) {
	out := ParseSmart(`["\u12"]`)
	arr := out.Results[0].ArrayValue()
	require.Len(t, arr, 1)
	assert.Equal(t, `\u12`, arr[0].StringValue())
	assert.False(t, out.OK)
	assert.Contains(t, out.Errors[0], `Invalid \uXXXX`)
}

func TestParseSmartValidUnicodeEscapeDecodes(t *testing.T) {
	out := ParseSmart(`["caf\u00e9"]`)
	arr := out.Results[0].ArrayValue()
	require.Len(t, arr, 1)
	assert.Equal(t, "café", arr[0].StringValue())
	assert.True(t, out.OK)
}

func TestParseSmartRawUTF8PassesThroughUnchanged(t *testing.T) {
	out := ParseSmart(`["é"]`)
	arr := out.Results[0].ArrayValue()
	require.Len(t, arr, 1)
	assert.Equal(t, "é", arr[0].StringValue())
	assert.True(t, out.OK)
}

func TestParseSmartUnrecognizedEscapeLetterIsKeptLiterally(t *testing.T) {
	out := ParseSmart(`["a\qb"]`)
	arr := out.Results[0].ArrayValue()
	require.Len(t, arr, 1)
	assert.Equal(t, "aqb", arr[0].StringValue())
	assert.False(t, out.OK)
}

func TestParseSmartSingleAndDoubleQuotedStringsBothAccepted(t *testing.T) {
	out := ParseSmart(`['single', "double"]`)
	arr := out.Results[0].ArrayValue()
	require.Len(t, arr, 2)
	assert.Equal(t, "single", arr[0].StringValue())
	assert.Equal(t, "double", arr[1].StringValue())
}
