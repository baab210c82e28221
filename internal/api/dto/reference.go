package dto

type VehicleClassResponse struct {
	VehicleType string  `json:"vehicle_type"`
	FuelRate    float64 `json:"fuel_rate_l_per_100km"`
	Emergency   bool    `json:"emergency"`
}

type ListVehicleClassesResponse struct {
	VehicleClasses []VehicleClassResponse `json:"vehicle_classes"`
}

type LandmarkResponse struct {
	LandmarkID int        `json:"landmark_id"`
	Name       string     `json:"name"`
	Kind       string     `json:"kind"`
	Location   [2]float64 `json:"location"`
}

type ListLandmarksResponse struct {
	Landmarks []LandmarkResponse `json:"landmarks"`
}
