package car

// Gear describes one ratio of the gearbox
type Gear struct {
	MaxSpeed     float64 `mapstructure:"max_speed" msgpack:"max_speed"`         // ceiling in km/h
	Acceleration float64 `mapstructure:"acceleration" msgpack:"acceleration"` // km/h gained per second at full throttle
}

// Car represents the vehicle the player drives
type Car struct {
	Make         string
	Model        string
	Gears        []Gear  // index 0 is first gear
	FuelCapacity float64 // tank size in percent, the HUD shows fuel against this
}

// NewCar creates a car with the given gearbox and a full tank
func NewCar(make, model string, gears []Gear) *Car {
	return &Car{
		Make:         make,
		Model:        model,
		Gears:        append([]Gear(nil), gears...),
		FuelCapacity: 100.0,
	}
}

// MaxGear returns the highest selectable gear (gears are numbered from 1)
func (c *Car) MaxGear() int {
	return len(c.Gears)
}

// ClampGear keeps a gear number inside [1, MaxGear]
func (c *Car) ClampGear(gear int) int {
	if gear < 1 {
		return 1
	}
	if gear > c.MaxGear() {
		return c.MaxGear()
	}
	return gear
}

// Ceiling returns the top speed of the given gear
func (c *Car) Ceiling(gear int) float64 {
	return c.Gears[c.ClampGear(gear)-1].MaxSpeed
}

// Acceleration returns the throttle response of the given gear
func (c *Car) Acceleration(gear int) float64 {
	return c.Gears[c.ClampGear(gear)-1].Acceleration
}

// TopSpeed is the ceiling of the highest gear
func (c *Car) TopSpeed() float64 {
	return c.Ceiling(c.MaxGear())
}
