package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allFields = []string{
	FieldCement, FieldSlag, FieldFlyAsh, FieldWater,
	FieldSuperplasticizer, FieldCoarseAggregate, FieldFineAggregate, FieldAge,
}

func TestMixDesign_ValueSetValueRoundTrip(t *testing.T) {
	var mix MixDesign
	for i, field := range allFields {
		want := float64(i+1) * 10
		require.True(t, mix.SetValue(field, want), "field %s", field)

		got, ok := mix.Value(field)
		require.True(t, ok, "field %s", field)
		assert.Equal(t, want, got, "field %s", field)
	}
}

func TestMixDesign_UnknownField(t *testing.T) {
	var mix MixDesign
	_, ok := mix.Value("Aditivo_kg_m3")
	assert.False(t, ok)
	assert.False(t, mix.SetValue("Aditivo_kg_m3", 1))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Cemento", DisplayName(FieldCement))
	assert.Equal(t, "Edad de Curado", DisplayName(FieldAge))
	// Unknown names fall back to the technical name.
	assert.Equal(t, "Otro_Campo", DisplayName("Otro_Campo"))
}

func TestUnit(t *testing.T) {
	assert.Equal(t, "días", Unit(FieldAge))
	assert.Equal(t, "kg/m³", Unit(FieldCement))
	assert.Equal(t, "kg/m³", Unit(FieldWater))
}

func TestParseValidationPolicy(t *testing.T) {
	p, err := ParseValidationPolicy("strict")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	p, err = ParseValidationPolicy("permissive")
	require.NoError(t, err)
	assert.Equal(t, PolicyPermissive, p)

	_, err = ParseValidationPolicy("lenient")
	assert.Error(t, err)
}
