package reservation

import (
	"encoding/json"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// childRow элемент колонки children (JSONB)
type childRow struct {
	Name        string  `json:"name,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Age         int     `json:"age,omitempty"`
}

func encodeChildren(children []domain.Child) ([]byte, error) {
	rows := make([]childRow, 0, len(children))
	for _, c := range children {
		row := childRow{Name: c.Name, Age: c.Age}
		if c.DateOfBirth != nil {
			dob := c.DateOfBirth.Format(domain.DateFormat)
			row.DateOfBirth = &dob
		}
		rows = append(rows, row)
	}
	return json.Marshal(rows)
}

func decodeChildren(data []byte) ([]domain.Child, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rows []childRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	children := make([]domain.Child, 0, len(rows))
	for _, row := range rows {
		c := domain.Child{Name: row.Name, Age: row.Age}
		if row.DateOfBirth != nil {
			dob, err := time.Parse(domain.DateFormat, *row.DateOfBirth)
			if err != nil {
				return nil, err
			}
			c.DateOfBirth = &dob
		}
		children = append(children, c)
	}
	return children, nil
}
