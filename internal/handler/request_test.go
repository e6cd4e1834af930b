package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMileage_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"string", `{"mileage":"50000"}`, "50000", false},
		{"integer", `{"mileage":50000}`, "50000", false},
		{"decimal keeps wire form", `{"mileage":1.5}`, "1.5", false},
		{"null is empty", `{"mileage":null}`, "", false},
		{"boolean rejected", `{"mileage":true}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SubmissionRequest
			err := json.Unmarshal([]byte(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(req.Mileage))
		})
	}
}
