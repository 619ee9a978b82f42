package utils

// RoundDecimal rounds a non-negative value to the given number of decimal
// places, e.g. RoundDecimal(3.14159, 2) returns 3.14.
func RoundDecimal(value float64, decimals int) float64 {
	pow := 1.0
	for i := 0; i < decimals; i++ {
		pow *= 10
	}

	return float64(int(value*pow+0.5)) / pow
}

// Percent returns part/total as a percentage with two decimals, or 0 when
// total is zero.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundDecimal(100*float64(part)/float64(total), 2)
}
