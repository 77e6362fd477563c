package utils

// ValidLatitude reports whether lat is within [-90, 90].
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lng is within [-180, 180].
func ValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	return ValidLatitude(lat) && ValidLongitude(lng)
}

// ValidateRadius проверяет валидность радиуса поиска (0 - 50000 метров)
func ValidateRadius(radiusMeters int) bool {
	return radiusMeters >= 0 && radiusMeters <= 50000
}
