package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount without
// crossing zero.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if math.Abs(speed) > max {
		return math.Copysign(max, speed)
	}
	return speed
}
