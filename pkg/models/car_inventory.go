package models

import (
	"github.com/samber/lo"

	"github.com/golangdaddy/topgear/pkg/models/car"
)

// carSpec scales the tuned gearbox into a distinct car
type carSpec struct {
	make, model string
	speed       float64
	accel       float64
}

var carSpecs = []carSpec{
	{"Lotus", "Esprit", 1, 1},
	{"Ferrari", "F40", 1.05, 0.9},
	{"Porsche", "959", 0.95, 1.12},
}

// CarInventory manages the collection of selectable cars
type CarInventory struct {
	cars []*car.Car
}

// NewCarInventory builds every selectable car from the base gearbox
func NewCarInventory(gears []car.Gear) *CarInventory {
	return &CarInventory{
		cars: lo.Map(carSpecs, func(s carSpec, _ int) *car.Car {
			scaled := lo.Map(gears, func(g car.Gear, _ int) car.Gear {
				return car.Gear{MaxSpeed: g.MaxSpeed * s.speed, Acceleration: g.Acceleration * s.accel}
			})
			return car.NewCar(s.make, s.model, scaled)
		}),
	}
}

// GetAllCars returns all available cars
func (ci *CarInventory) GetAllCars() []*car.Car {
	return ci.cars
}

// Get returns the car at index i, wrapping around the list
func (ci *CarInventory) Get(i int) *car.Car {
	n := len(ci.cars)
	return ci.cars[((i%n)+n)%n]
}
