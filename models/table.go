package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

func (s TableStatus) IsValid() bool {
	return s == TableAvailable || s == TableOccupied || s == TableReserved
}

// TableNumber is the user-facing table identifier. Clients send it as a JSON
// number or a numeric string; past the decode boundary it is strictly an int.
type TableNumber int

var ErrBadTableNumber = errors.New("table number must be a valid number")

func (n *TableNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return ErrBadTableNumber
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return ErrBadTableNumber
		}
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return ErrBadTableNumber
	}
	*n = TableNumber(v)
	return nil
}

type Table struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	Number    TableNumber `db:"number" json:"number"`
	Capacity  int         `db:"capacity" json:"capacity"`
	Status    TableStatus `db:"status" json:"status"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}
