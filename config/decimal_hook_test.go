package config

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStringToDecimalHookFunc(t *testing.T) {
	hook, ok := stringToDecimalHookFunc().(func(reflect.Type, reflect.Type, any) (any, error))
	require.True(t, ok)

	decimalType := reflect.TypeOf(decimal.Decimal{})
	stringType := reflect.TypeOf("")

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string", input: "3.50", want: "3.5"},
		{name: "int", input: 3, want: "3"},
		{name: "float without drift", input: 0.1, want: "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hook(reflect.TypeOf(tt.input), decimalType, tt.input)
			require.NoError(t, err)

			dec, ok := got.(decimal.Decimal)
			require.True(t, ok)
			require.Equal(t, tt.want, dec.String())
		})
	}

	// Non-decimal targets pass through untouched.
	got, err := hook(stringType, stringType, "plain")
	require.NoError(t, err)
	require.Equal(t, "plain", got)
}
