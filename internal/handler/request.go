package handler

import "encoding/json"

// Mileage takes a JSON string or a bare number; the submission form has
// sent both over time. Numbers keep their wire representation.
type Mileage string

func (m *Mileage) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Mileage(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = Mileage(n.String())
	return nil
}

type SubmissionRequest struct {
	CarNumber string  `json:"carNumber"`
	Phone     string  `json:"phone"`
	Region    string  `json:"region"`
	Mileage   Mileage `json:"mileage"`
}
