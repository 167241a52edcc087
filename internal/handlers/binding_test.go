package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type bindTarget struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

func TestBindNestedOrFlat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		key         string
		body        string
		expected    bindTarget
		expectError bool
	}{
		{
			name:     "Nested Structure",
			key:      "time_entry",
			body:     `{"time_entry": {"name": "Thesis Work", "hours": 2.5}}`,
			expected: bindTarget{Name: "Thesis Work", Hours: 2.5},
		},
		{
			name:     "Flat Structure",
			key:      "time_entry",
			body:     `{"name": "Gym", "hours": 1}`,
			expected: bindTarget{Name: "Gym", Hours: 1},
		},
		{
			name:     "Missing Key Falls Back to Flat",
			key:      "time_entry",
			body:     `{"other": "value", "name": "Uni Study", "hours": 3}`,
			expected: bindTarget{Name: "Uni Study", Hours: 3},
		},
		{
			name:        "Invalid Field Type",
			key:         "time_entry",
			body:        `{"name": "Gym", "hours": "lots"}`,
			expectError: true,
		},
		{
			name:        "Nested but Invalid Content",
			key:         "time_entry",
			body:        `{"time_entry": {"name": "Gym", "hours": "lots"}}`,
			expectError: true,
		},
		{
			name:        "Nested Key Present but Invalid Type",
			key:         "time_entry",
			body:        `{"time_entry": "some string"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var result bindTarget
			err := BindNestedOrFlat(c, tt.key, &result)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
