package fuel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuel(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mass  uint64
		fuel  uint64
		total uint64
	}){
		{0, 0, 0},
		{2, 0, 0},
		{8, 0, 0},
		{9, 1, 1},
		{12, 2, 2},
		{14, 2, 2},
		{1969, 654, 966},
		{100756, 33583, 50346},
	}

	for _, entry := range table {
		assert.Equal(entry.fuel, Fuel(entry.mass), "mass %d", entry.mass)
		assert.Equal(entry.total, TotalFuel(entry.mass), "mass %d", entry.mass)
	}
}

func TestSum(t *testing.T) {
	assert := assert.New(t)

	masses := []uint64{12, 14, 1969, 100756}
	assert.Equal(uint64(2+2+654+33583), Sum(masses, false))
	assert.Equal(uint64(2+2+966+50346), Sum(masses, true))
	assert.Equal(uint64(0), Sum(nil, true))
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	masses, err := Parse(strings.NewReader("12\n 14 \n\n1969\r\n100756"))
	assert.NoError(err)
	assert.Equal([]uint64{12, 14, 1969, 100756}, masses)

	masses, err = Parse(strings.NewReader("12\nlots\n"))
	assert.Nil(masses)
	assert.Equal(ErrParseMass{LineNo: 2, Line: "lots"}, err)

	_, err = Parse(strings.NewReader("\n\n"))
	assert.ErrorIs(err, ErrEmptyInput)
}
