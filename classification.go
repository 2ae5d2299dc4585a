package ucum

// Classification groups an atom by where the UCUM specification defines it
// (§4 of SPEC_FULL.md). It is informational: the conversion engine never
// branches on it.
type Classification int

const (
	ClassificationNone Classification = iota
	ClassificationSI
	ClassificationDimless
	ClassificationISC
	ClassificationUSLengths
	ClassificationBritLengths
	ClassificationHeat
	ClassificationMisc
	ClassificationClinical
	ClassificationChemical
	ClassificationLevels
)

var classificationNames = map[Classification]string{
	ClassificationNone:        "",
	ClassificationSI:          "SI",
	ClassificationDimless:     "Dimless",
	ClassificationISC:         "ISC",
	ClassificationUSLengths:   "USLengths",
	ClassificationBritLengths: "BritLengths",
	ClassificationHeat:        "Heat",
	ClassificationMisc:        "Misc",
	ClassificationClinical:    "Clinical",
	ClassificationChemical:    "Chemical",
	ClassificationLevels:      "Levels",
}

// String returns the UCUM classification name.
func (c Classification) String() string {
	return classificationNames[c]
}

// Property names the physical quantity an atom measures (§4 of
// SPEC_FULL.md). Like Classification, it is informational only.
type Property int

const (
	PropertyNone Property = iota
	PropertyLength
	PropertyMass
	PropertyTime
	PropertyPlaneAngle
	PropertyTemperature
	PropertyFraction
	PropertyPressure
	PropertyEnergy
	PropertyForce
	PropertyPower
	PropertyAcidity
	PropertyRefractionOfPrism
	PropertyElectricCharge
	PropertyElectricPotential
	PropertyFrequency
	PropertyVolume
	PropertyArea
	PropertyLuminousIntensity
	PropertyAmountOfSubstance
	PropertyInformation
	PropertyDimensionless
	PropertyArbitrary
	PropertyCatalyticActivity
)

var propertyNames = map[Property]string{
	PropertyNone:              "",
	PropertyLength:            "Length",
	PropertyMass:              "Mass",
	PropertyTime:              "Time",
	PropertyPlaneAngle:        "PlaneAngle",
	PropertyTemperature:       "Temperature",
	PropertyFraction:          "Fraction",
	PropertyPressure:          "Pressure",
	PropertyEnergy:            "Energy",
	PropertyForce:             "Force",
	PropertyPower:             "Power",
	PropertyAcidity:           "Acidity",
	PropertyRefractionOfPrism: "RefractionOfPrism",
	PropertyElectricCharge:    "ElectricCharge",
	PropertyElectricPotential: "ElectricPotential",
	PropertyFrequency:         "Frequency",
	PropertyVolume:            "Volume",
	PropertyArea:              "Area",
	PropertyLuminousIntensity: "LuminousIntensity",
	PropertyAmountOfSubstance: "AmountOfSubstance",
	PropertyInformation:       "Information",
	PropertyDimensionless:     "Dimensionless",
	PropertyArbitrary:         "Arbitrary",
	PropertyCatalyticActivity: "CatalyticActivity",
}

// String returns the UCUM property name.
func (p Property) String() string {
	return propertyNames[p]
}
