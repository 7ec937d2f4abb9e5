package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *Contact
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   \t ",
			expected: nil,
		},
		{
			name:  "name then role then phone",
			input: "Oleg Leonov (CEO-designate) -6221 9876",
			expected: &Contact{
				Name:  "Oleg Leonov",
				Role:  "CEO-designate",
				Phone: "6221 9876",
			},
		},
		{
			name:  "name and role without phone",
			input: "John Smith (Director)",
			expected: &Contact{
				Name: "John Smith",
				Role: "Director",
			},
		},
		{
			name:  "phone then hyphen-separated name and role",
			input: "+65 6221 9876 (Tan Wee-Head of Compliance)",
			expected: &Contact{
				Name:  "Tan Wee",
				Role:  "Head of Compliance",
				Phone: "+65 6221 9876",
			},
		},
		{
			name:  "phone then comma-separated name and role",
			input: "6221 0000 (Lim, Director)",
			expected: &Contact{
				Name:  "Lim",
				Role:  "Director",
				Phone: "6221 0000",
			},
		},
		{
			name:  "phone then bare name",
			input: "+65 6221 0000 (Lim)",
			expected: &Contact{
				Name:  "Lim",
				Phone: "+65 6221 0000",
			},
		},
		{
			name:  "extension abbreviation accepted as name",
			input: "+65 6221 1234 (ext. 10)",
			expected: &Contact{
				Name:  "ext. 10",
				Phone: "+65 6221 1234",
			},
		},
		{
			name:     "purely numeric parenthetical rejected",
			input:    "+65 6221 1234 (121)",
			expected: nil,
		},
		{
			name:     "no parentheses at all",
			input:    "+65 6221 1234",
			expected: nil,
		},
		{
			name:  "letter-first prefix wins the name position",
			input: "Tel 6221 (Lim-CEO)",
			expected: &Contact{
				Name: "Tel 6221",
				Role: "Lim-CEO",
			},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  Oleg Leonov ( CEO ) - 6221 9876  ",
			expected: &Contact{
				Name:  "Oleg Leonov",
				Role:  "CEO",
				Phone: "6221 9876",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseContact(tt.input)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func TestSplitNameRole(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedName string
		expectedRole string
	}{
		{
			name:         "hyphen separator",
			input:        "Tan Wee-Head of Compliance",
			expectedName: "Tan Wee",
			expectedRole: "Head of Compliance",
		},
		{
			name:         "hyphen preferred over comma",
			input:        "Tan Wee-Head, Compliance",
			expectedName: "Tan Wee",
			expectedRole: "Head, Compliance",
		},
		{
			name:         "comma separator",
			input:        "Lim, Director",
			expectedName: "Lim",
			expectedRole: "Director",
		},
		{
			name:         "no separator",
			input:        "Lim",
			expectedName: "Lim",
			expectedRole: "",
		},
		{
			name:         "separator with empty role",
			input:        "Lim- ",
			expectedName: "Lim",
			expectedRole: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, role := splitNameRole(tt.input)
			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedRole, role)
		})
	}
}
