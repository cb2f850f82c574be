package knn

import "strconv"

// LabelParser converts a stored label into the classifier's output type.
type LabelParser[T any] func(label string) (T, error)

// StringLabel returns the label unchanged.
func StringLabel(label string) (string, error) {
	return label, nil
}

// IntLabel parses a base-10 integer label.
func IntLabel(label string) (int, error) {
	return strconv.Atoi(label)
}

// FloatLabel parses a floating-point label.
func FloatLabel(label string) (float64, error) {
	return strconv.ParseFloat(label, 64)
}

// BoolLabel parses a boolean label as accepted by strconv.ParseBool.
func BoolLabel(label string) (bool, error) {
	return strconv.ParseBool(label)
}
