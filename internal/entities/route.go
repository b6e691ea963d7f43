package entities

// Route - результат расчета маршрута между адресами забора и доставки.
type Route struct {
	DistanceMeters  int64
	DurationSeconds int64
}
