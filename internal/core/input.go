package core

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrTokenCount is returned when a target line does not hold exactly two values.
	ErrTokenCount = errors.New("enter two coordinates: row and column")

	// ErrNotInteger is returned when a coordinate is not a whole number.
	ErrNotInteger = errors.New("coordinates must be whole numbers")
)

// ParseTarget reads a typed target such as "2 3" and returns the 1-based
// row and column. Range checking is left to the grid.
func ParseTarget(line string) (row, col int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, ErrTokenCount
	}

	row, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, ErrNotInteger
	}
	col, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, ErrNotInteger
	}
	return row, col, nil
}
