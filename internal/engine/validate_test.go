package engine

import (
	"testing"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// featureOrder is the canonical metadata order used across the engine
// tests.
var featureOrder = []string{
	domain.FieldCement, domain.FieldSlag, domain.FieldFlyAsh, domain.FieldWater,
	domain.FieldSuperplasticizer, domain.FieldCoarseAggregate, domain.FieldFineAggregate,
	domain.FieldAge,
}

func TestValidate_ValidMixPasses(t *testing.T) {
	res := Validate(testutil.ValidMix(), featureOrder, DatasetRanges(), domain.PolicyStrict)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Violations)
}

func TestValidate_BoundariesInclusive(t *testing.T) {
	mix := testutil.ValidMix()
	mix.Cement = 102
	res := Validate(mix, featureOrder, DatasetRanges(), domain.PolicyStrict)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Violations)

	mix.Cement = 540
	res = Validate(mix, featureOrder, DatasetRanges(), domain.PolicyStrict)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Violations)
}

func TestValidate_StrictBlocksOutOfRange(t *testing.T) {
	mix := testutil.ValidMix()
	mix.Cement = 600
	res := Validate(mix, featureOrder, DatasetRanges(), domain.PolicyStrict)
	assert.False(t, res.Valid)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], domain.FieldCement)
	assert.Contains(t, res.Violations[0], "outside valid range")
}

func TestValidate_PermissiveWidensRanges(t *testing.T) {
	// Cement range is [102, 540]; the 10% margin widens it to
	// [58.2, 583.8], so 60 passes permissive but not strict.
	mix := testutil.ValidMix()
	mix.Cement = 60

	res := Validate(mix, featureOrder, DatasetRanges(), domain.PolicyPermissive)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Violations)

	res = Validate(mix, featureOrder, DatasetRanges(), domain.PolicyStrict)
	assert.False(t, res.Valid)
	assert.Len(t, res.Violations, 1)
}

func TestValidate_PermissiveWarnsWithoutBlocking(t *testing.T) {
	mix := testutil.ValidMix()
	mix.Cement = 50 // below even the widened minimum

	res := Validate(mix, featureOrder, DatasetRanges(), domain.PolicyPermissive)
	assert.True(t, res.Valid)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], domain.FieldCement)
}

func TestValidate_MissingFieldAlwaysBlocks(t *testing.T) {
	order := append([]string{}, featureOrder...)
	order = append(order, "Aditivo_Extra_kg_m3")

	for _, policy := range []domain.ValidationPolicy{domain.PolicyStrict, domain.PolicyPermissive} {
		res := Validate(testutil.ValidMix(), order, DatasetRanges(), policy)
		assert.False(t, res.Valid, "policy %s", policy)
		require.Len(t, res.Violations, 1)
		assert.Contains(t, res.Violations[0], "missing required variable Aditivo_Extra_kg_m3")
	}
}

func TestValidate_ViolationsInCanonicalOrder(t *testing.T) {
	mix := testutil.ValidMix()
	mix.AgeDays = 5000
	mix.Cement = 600

	res := Validate(mix, featureOrder, DatasetRanges(), domain.PolicyStrict)
	require.Len(t, res.Violations, 2)
	assert.Contains(t, res.Violations[0], domain.FieldCement)
	assert.Contains(t, res.Violations[1], domain.FieldAge)
}

func TestValidate_FieldWithoutRangeOnlyCheckedForPresence(t *testing.T) {
	ranges := DatasetRanges()
	delete(ranges, domain.FieldAge)

	mix := testutil.ValidMix()
	mix.AgeDays = 5000
	res := Validate(mix, featureOrder, ranges, domain.PolicyStrict)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Violations)
}

func TestValidationError_MessageJoinsViolations(t *testing.T) {
	err := &ValidationError{Violations: []string{"a", "b"}}
	assert.Equal(t, "invalid mix design: a; b", err.Error())
}
