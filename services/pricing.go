package services

import "velvet-cone/models"

const (
	MinScoops = 1
	MaxScoops = 3
)

// ContainerPrices is the fixed surcharge per container kind.
var ContainerPrices = map[string]float64{
	models.ContainerCup:  0,
	models.ContainerCone: 10,
}

// Price computes an order total: unit price times scoops plus the
// container surcharge. Unknown flavors and out-of-range scoop counts
// price to 0 rather than erroring; the form constrains both before an
// order is ever placed.
func Price(flavor string, scoops int, container string, menu map[string]float64, containerPrices map[string]float64) float64 {
	unit, ok := menu[flavor]
	if !ok {
		return 0
	}
	if scoops < MinScoops || scoops > MaxScoops {
		return 0
	}
	return unit*float64(scoops) + containerPrices[container]
}
