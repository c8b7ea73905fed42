package validators

import "fmt"

// ValidatePoints checks a grade against the assignment's point ceiling.
// Both bounds are inclusive: 0 and maxPoints are valid grades.
func ValidatePoints(points, maxPoints int) error {
	if points < 0 || points > maxPoints {
		return fmt.Errorf("points must be between 0 and %d", maxPoints)
	}
	return nil
}
