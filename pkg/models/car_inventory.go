package models

import (
	"github.com/golangdaddy/chasedrive/pkg/models/car"
)

// CarInventory manages the collection of available cars
var CarInventory = &carInventory{
	cars: []*car.Car{
		car.NewCar("Toyota", "Corolla", 2020, 1400, 150, 120, 0.5),
		car.NewCar("Honda", "Civic", 2021, 1350, 160, 130, 0.6),
		car.NewCar("Ford", "Mustang", 2019, 1600, 300, 160, 0.4),
		car.NewCar("BMW", "3 Series", 2022, 1500, 250, 150, 0.7),
		sportsBrakes(car.NewCar("Audi", "R8", 2021, 1600, 560, 200, 0.8)),
	},
}

func sportsBrakes(c *car.Car) *car.Car {
	c.Brakes = car.Brakes{Type: "Carbon-Ceramic", StoppingPower: 0.9}
	return c
}

type carInventory struct {
	cars []*car.Car
}

// GetAllCars returns all available cars
func (ci *carInventory) GetAllCars() []*car.Car {
	return ci.cars
}

// Default is the car driven when nobody picks one
func (ci *carInventory) Default() *car.Car {
	if len(ci.cars) == 0 {
		return nil
	}
	return ci.cars[0]
}
