package utils

import "time"

// CalculateAge returns whole years since birthday, adjusting for whether the
// birthday has occurred yet this year.
func CalculateAge(birthday time.Time) int {
	now := time.Now()
	age := now.Year() - birthday.Year()
	if now.YearDay() < birthday.YearDay() {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}
