package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateFor(t *testing.T) {
	assert.True(t, RateFor("SA").Equal(decimal.NewFromFloat(0.15)))
	assert.True(t, RateFor("AE").Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, RateFor("EG").Equal(decimal.NewFromFloat(0.14)))
	assert.True(t, RateFor("MA").Equal(decimal.NewFromFloat(0.20)))
	assert.True(t, RateFor("PS").Equal(decimal.NewFromFloat(0.16)))
}

func TestRateForIsCaseInsensitive(t *testing.T) {
	assert.True(t, RateFor("sa").Equal(RateFor("SA")))
	assert.True(t, RateFor(" ma ").Equal(RateFor("MA")))
}

func TestRateForUnknownRegion(t *testing.T) {
	assert.True(t, RateFor("").Equal(DefaultRate))
	assert.True(t, RateFor("XX").Equal(DefaultRate))
}
