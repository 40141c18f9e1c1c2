package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRange_BothEnds(t *testing.T) {
	result := DateRange("show transactions from January 1 to February 15")
	assert.NotNil(t, result)
	assert.Equal(t, "January 1", result.Start)
	assert.Equal(t, "February 15", result.End)
}

func TestDateRange_StartOnly(t *testing.T) {
	result := DateRange("show payments since March")
	assert.NotNil(t, result)
	assert.Equal(t, "March", result.Start)
	assert.Equal(t, "", result.End)
}

func TestDateRange_EndOnly(t *testing.T) {
	result := DateRange("show payments before December")
	assert.NotNil(t, result)
	assert.Equal(t, "", result.Start)
	assert.Equal(t, "December", result.End)
}

func TestDateRange_RelativePhrase(t *testing.T) {
	result := DateRange("show my transactions last week")
	assert.NotNil(t, result)
	assert.Equal(t, "last week", result.Start)
}

func TestDateRange_NoMatch(t *testing.T) {
	assert.Nil(t, DateRange("show my transactions"))
}

func TestDate_Forms(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"month day year", "status of payment on January 15, 2024", "January 15, 2024"},
		{"slash date", "payment on 01/15/2024 please", "01/15/2024"},
		{"month day", "payment on January 15", "January 15"},
		{"relative day", "what did I pay yesterday", "yesterday"},
		{"relative unit", "payment last monday", "last monday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Date(tt.input))
		})
	}
}

func TestDate_NoMatch(t *testing.T) {
	assert.Equal(t, "", Date("send money to John"))
}
