package domain

// VehicleClass tags the kind of vehicle travelling a route.
type VehicleClass string

const (
	VehicleAmbulance  VehicleClass = "ambulance"
	VehicleFire       VehicleClass = "fire"
	VehiclePolice     VehicleClass = "police"
	VehicleBus        VehicleClass = "bus"
	VehicleCar        VehicleClass = "car"
	VehicleMotorcycle VehicleClass = "motorcycle"
)

// DefaultFuelRate applies to classes without a known rate (liters/100km).
const DefaultFuelRate = 8.0

var fuelRates = map[VehicleClass]float64{
	VehicleAmbulance:  8.0,
	VehicleFire:       20.0,
	VehiclePolice:     9.0,
	VehicleBus:        25.0,
	VehicleCar:        8.0,
	VehicleMotorcycle: 4.0,
}

// AllVehicleClasses returns the known classes in a stable order.
func AllVehicleClasses() []VehicleClass {
	return []VehicleClass{
		VehicleAmbulance,
		VehicleFire,
		VehiclePolice,
		VehicleBus,
		VehicleCar,
		VehicleMotorcycle,
	}
}

func (v VehicleClass) IsValid() bool {
	_, ok := fuelRates[v]
	return ok
}

// FuelRate returns liters per 100km, falling back to DefaultFuelRate.
func (v VehicleClass) FuelRate() float64 {
	if r, ok := fuelRates[v]; ok {
		return r
	}
	return DefaultFuelRate
}

// IsEmergency reports priority-access classes. Unknown classes are not.
func (v VehicleClass) IsEmergency() bool {
	switch v {
	case VehicleAmbulance, VehicleFire, VehiclePolice:
		return true
	}
	return false
}

func (v VehicleClass) String() string { return string(v) }
