// Package ubicacionrepo stores the last reported position of each courier
// in "repartidor_ubicaciones", one row per courier.
package ubicacionrepo

import "time"

type UbicacionDTO struct {
	CourierID int64 `gorm:"primaryKey;autoIncrement:false"`
	Lat       float64
	Lng       float64
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (UbicacionDTO) TableName() string {
	return "repartidor_ubicaciones"
}
