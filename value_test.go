package phpserde

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	testCases := []struct {
		value Value
		kind  Kind
		name  string
	}{
		{Null{}, KindNull, "null"},
		{Bool(true), KindBool, "bool"},
		{Int(1), KindInt, "int"},
		{Float(1.5), KindFloat, "float"},
		{String("x"), KindString, "string"},
		{&Array{Map: newMap()}, KindArray, "array"},
		{&Object{Name: "stdClass", Map: newMap()}, KindObject, "object"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.kind, tc.value.Kind())
			require.Equal(t, tc.name, tc.value.Kind().String())
		})
	}
}

func TestValueString(t *testing.T) {
	value, err := Parse(`a:2:{i:0;s:1:"a";s:3:"obj";O:8:"stdClass":1:{s:2:"id";b:1;}}`)
	require.NoError(t, err)

	require.Equal(t, `{0 => "a", "obj" => stdClass {"id" => true}}`, value.String())
}

func TestPrimitiveStrings(t *testing.T) {
	require.Equal(t, "NULL", Null{}.String())
	require.Equal(t, "true", Bool(true).String())
	require.Equal(t, "-7", Int(-7).String())
	require.Equal(t, "3.14", Float(3.14).String())
	require.Equal(t, `"a\"b"`, String(`a"b`).String())
}
