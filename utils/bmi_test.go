package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 80)
	require.NoError(t, err)
	assert.Equal(t, 26.1, bmi)
	assert.Equal(t, "Overweight", BMICategory(bmi))
}

func TestCalculateBMIRejectsImplausible(t *testing.T) {
	_, err := CalculateBMI(0, 80)
	assert.Error(t, err)

	_, err = CalculateBMI(300, 80)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17))
	assert.Equal(t, "Normal weight", BMICategory(22))
	assert.Equal(t, "Obesity class I", BMICategory(31))
	assert.Equal(t, "Obesity class II", BMICategory(36))
	assert.Equal(t, "Obesity class III", BMICategory(41))
}
