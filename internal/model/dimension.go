package model

// SystemDesign describes a candidate PV system to be dimensioned:
// which catalog equipment is used and how the array is laid out.
type SystemDesign struct {
	ModuleID         string
	InverterID       string
	ModulesPerString int
	StringCount      int
	Latitude         float64
	Longitude        float64
	TiltDeg          float64
	AzimuthDeg       float64
}

// DimensioningResult combines the compatibility assessment done
// locally with the production figures returned by the numeric service.
type DimensioningResult struct {
	Design           SystemDesign
	DCPowerW         float64
	DCACRatio        float64
	Warnings         []string
	AnnualEnergyKWh  float64
	MonthlyEnergyKWh []float64
	PerformanceRatio float64
}
