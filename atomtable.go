package ucum

import "github.com/shopspring/decimal"

// builtinAtoms is the representative atom catalogue spec.md §1/§6.3/§9
// calls for: not the full ~300-entry UCUM XML table, but enough atoms
// spanning every classification except Clinical, every property, and every
// Definition variant to exercise the engine end to end, grounded on the
// shape spec.md §6.3 gives for each entry. Values that matter to exact
// conversion (the international inch, the US gallon, the avoirdupois pound)
// are authored as exact decimal literals per SPEC_FULL.md §3.1, not float64
// constants; Atom.Float64Value projects them to float64 when a reduction
// uses them.
var builtinAtoms = []Atom{
	// --- The seven base units (spec.md §3's seven-axis dimension vector) ---
	{
		ID: "Meter", PrimaryCode: "m", Names: []string{"meter"},
		Classification: ClassificationSI, Property: PropertyLength,
		Dimension: Dimension{AxisLength: 1}, IsMetric: true,
		Definition: Definition{Kind: DefBase},
	},
	{
		ID: "Second", PrimaryCode: "s", Names: []string{"second"},
		Classification: ClassificationSI, Property: PropertyTime,
		Dimension: Dimension{AxisTime: 1}, IsMetric: true,
		Definition: Definition{Kind: DefBase},
	},
	{
		ID: "Gram", PrimaryCode: "g", Names: []string{"gram"},
		Classification: ClassificationSI, Property: PropertyMass,
		Dimension: Dimension{AxisMass: 1}, IsMetric: true,
		Definition: Definition{Kind: DefBase},
	},
	{
		ID: "Radian", PrimaryCode: "rad", Names: []string{"radian"},
		Classification: ClassificationSI, Property: PropertyPlaneAngle,
		Dimension: Dimension{AxisPlaneAngle: 1}, IsMetric: true,
		Definition: Definition{Kind: DefBase},
	},
	{
		ID: "Kelvin", PrimaryCode: "K", Names: []string{"kelvin"},
		Classification: ClassificationSI, Property: PropertyTemperature,
		Dimension: Dimension{AxisTemperature: 1}, IsMetric: true,
		Definition: Definition{Kind: DefBase},
	},
	{
		ID: "Coulomb", PrimaryCode: "C", Names: []string{"coulomb"},
		Classification: ClassificationSI, Property: PropertyElectricCharge,
		Dimension: Dimension{AxisElectricCharge: 1}, IsMetric: true,
		Definition: Definition{Kind: DefBase},
	},
	{
		ID: "Candela", PrimaryCode: "cd", Names: []string{"candela"},
		Classification: ClassificationSI, Property: PropertyLuminousIntensity,
		Dimension: Dimension{AxisLuminousIntensity: 1}, IsMetric: true,
		Definition: Definition{Kind: DefBase},
	},

	// --- Dimensionless constants (NonDimensional) ---
	{
		ID: "TheNumberPi", PrimaryCode: "[pi]", Names: []string{"the number pi"},
		Classification: ClassificationDimless, Property: PropertyDimensionless,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.RequireFromString("3.14159265358979323846")},
	},
	{
		ID: "TenForArbitraryPowersStar", PrimaryCode: "10*", Names: []string{"the number ten for arbitrary powers"},
		Classification: ClassificationDimless, Property: PropertyDimensionless,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.NewFromInt(10)},
	},
	{
		ID: "TenForArbitraryPowersCaret", PrimaryCode: "10^", Names: []string{"the number ten for arbitrary powers"},
		Classification: ClassificationDimless, Property: PropertyDimensionless,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.NewFromInt(10)},
	},
	{
		ID: "Percent", PrimaryCode: "%", Names: []string{"percent"},
		Classification: ClassificationDimless, Property: PropertyFraction,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.RequireFromString("0.01")},
	},
	{
		ID: "PartsPerThousand", PrimaryCode: "[ppth]", Names: []string{"parts per thousand"},
		Classification: ClassificationDimless, Property: PropertyFraction,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.RequireFromString("0.001")},
	},
	{
		ID: "PartsPerMillion", PrimaryCode: "[ppm]", Names: []string{"parts per million"},
		Classification: ClassificationDimless, Property: PropertyFraction,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.RequireFromString("0.000001")},
	},
	{
		ID: "Mole", PrimaryCode: "mol", Names: []string{"mole"},
		Classification: ClassificationSI, Property: PropertyAmountOfSubstance,
		IsMetric: true,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.RequireFromString("6.02214076e23")},
	},
	{
		ID: "Bit", PrimaryCode: "bit", Names: []string{"bit"},
		Classification: ClassificationMisc, Property: PropertyInformation,
		IsMetric: true,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.NewFromInt(1)},
	},

	// --- Derived metric units (Dimensional) ---
	{
		ID: "Steradian", PrimaryCode: "sr", Names: []string{"steradian"},
		Classification: ClassificationSI, Property: PropertyPlaneAngle,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "rad2"},
	},
	{
		ID: "Hertz", PrimaryCode: "Hz", Names: []string{"hertz"},
		Classification: ClassificationSI, Property: PropertyFrequency,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "s-1"},
	},
	{
		ID: "Newton", PrimaryCode: "N", Names: []string{"newton"},
		Classification: ClassificationSI, Property: PropertyForce,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "kg.m.s-2"},
	},
	{
		ID: "Pascal", PrimaryCode: "Pa", Names: []string{"pascal"},
		Classification: ClassificationSI, Property: PropertyPressure,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "N/m2"},
	},
	{
		ID: "Joule", PrimaryCode: "J", Names: []string{"joule"},
		Classification: ClassificationSI, Property: PropertyEnergy,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "N.m"},
	},
	{
		ID: "Watt", PrimaryCode: "W", Names: []string{"watt"},
		Classification: ClassificationSI, Property: PropertyPower,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "J/s"},
	},
	{
		ID: "Ampere", PrimaryCode: "A", Names: []string{"ampere"},
		Classification: ClassificationSI, Property: PropertyElectricCharge,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "C/s"},
	},
	{
		ID: "Volt", PrimaryCode: "V", Names: []string{"volt"},
		Classification: ClassificationSI, Property: PropertyElectricPotential,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "J/C"},
	},
	{
		ID: "Farad", PrimaryCode: "F", Names: []string{"farad"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "C/V"},
	},
	{
		ID: "Ohm", PrimaryCode: "Ohm", Names: []string{"ohm"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "V/A"},
	},
	{
		ID: "Siemens", PrimaryCode: "S", Names: []string{"siemens"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "A/V"},
	},
	{
		ID: "Weber", PrimaryCode: "Wb", Names: []string{"weber"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "V.s"},
	},
	{
		ID: "Tesla", PrimaryCode: "T", Names: []string{"tesla"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "Wb/m2"},
	},
	{
		ID: "Henry", PrimaryCode: "H", Names: []string{"henry"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "Wb/A"},
	},
	{
		ID: "Lumen", PrimaryCode: "lm", Names: []string{"lumen"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "cd.sr"},
	},
	{
		ID: "Lux", PrimaryCode: "lx", Names: []string{"lux"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "lm/m2"},
	},
	{
		ID: "Becquerel", PrimaryCode: "Bq", Names: []string{"becquerel"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "s-1"},
	},
	{
		ID: "Gray", PrimaryCode: "Gy", Names: []string{"gray"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "J/kg"},
	},
	{
		ID: "Sievert", PrimaryCode: "Sv", Names: []string{"sievert"},
		Classification: ClassificationSI, Property: PropertyNone,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "J/kg"},
	},
	{
		ID: "Katal", PrimaryCode: "kat", Names: []string{"katal"},
		Classification: ClassificationSI, Property: PropertyCatalyticActivity,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "mol/s"},
	},
	{
		ID: "Liter", PrimaryCode: "l", SecondaryCode: "L", Names: []string{"liter"},
		Classification: ClassificationSI, Property: PropertyVolume,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "dm3"},
	},
	{
		ID: "AreUnit", PrimaryCode: "ar", Names: []string{"are"},
		Classification: ClassificationISC, Property: PropertyArea,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(100), Expression: "m2"},
	},
	{
		ID: "Tonne", PrimaryCode: "t", Names: []string{"tonne"},
		Classification: ClassificationISC, Property: PropertyMass,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1000), Expression: "kg"},
	},
	{
		ID: "Byte", PrimaryCode: "By", Names: []string{"byte"},
		Classification: ClassificationMisc, Property: PropertyInformation,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(8), Expression: "bit"},
	},

	// --- Time, off the second (Dimensional) ---
	{
		ID: "Minute", PrimaryCode: "min", Names: []string{"minute"},
		Classification: ClassificationISC, Property: PropertyTime,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(60), Expression: "s"},
	},
	{
		ID: "Hour", PrimaryCode: "h", Names: []string{"hour"},
		Classification: ClassificationISC, Property: PropertyTime,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(60), Expression: "min"},
	},
	{
		ID: "Day", PrimaryCode: "d", Names: []string{"day"},
		Classification: ClassificationISC, Property: PropertyTime,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(24), Expression: "h"},
	},
	{
		ID: "Year", PrimaryCode: "a_j", SecondaryCode: "ANN", Names: []string{"Julian year"},
		Classification: ClassificationISC, Property: PropertyTime,
		Definition: Definition{Kind: DefDimensional, Value: decimal.RequireFromString("365.25"), Expression: "d"},
	},

	// --- Plane angle, off the radian (Dimensional) ---
	{
		ID: "DegreeOfArc", PrimaryCode: "deg", Names: []string{"degree"},
		Classification: ClassificationISC, Property: PropertyPlaneAngle,
		Definition: Definition{Kind: DefDimensional, Value: decimal.RequireFromString("0.017453292519943295"), Expression: "rad"},
	},
	{
		ID: "GradeOfArc", PrimaryCode: "gon", SecondaryCode: "GON", Names: []string{"gon, grade"},
		Classification: ClassificationISC, Property: PropertyPlaneAngle,
		Definition: Definition{Kind: DefDimensional, Value: decimal.RequireFromString("0.9"), Expression: "deg"},
	},

	// --- US/international lengths (non-metric, Dimensional) ---
	{
		ID: "InchInternational", PrimaryCode: "[in_i]", Names: []string{"inch"},
		Classification: ClassificationUSLengths, Property: PropertyLength,
		Definition: Definition{Kind: DefDimensional, Value: decimal.RequireFromString("2.54"), Expression: "cm"},
	},
	{
		ID: "FootInternational", PrimaryCode: "[ft_i]", Names: []string{"foot"},
		Classification: ClassificationUSLengths, Property: PropertyLength,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(12), Expression: "[in_i]"},
	},
	{
		ID: "YardInternational", PrimaryCode: "[yd_i]", Names: []string{"yard"},
		Classification: ClassificationUSLengths, Property: PropertyLength,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(3), Expression: "[ft_i]"},
	},
	{
		ID: "MileInternational", PrimaryCode: "[mi_i]", Names: []string{"mile"},
		Classification: ClassificationUSLengths, Property: PropertyLength,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(5280), Expression: "[ft_i]"},
	},
	{
		ID: "AcreUS", PrimaryCode: "[acr_us]", Names: []string{"acre"},
		Classification: ClassificationBritLengths, Property: PropertyArea,
		Definition: Definition{Kind: DefDimensional, Value: decimal.RequireFromString("4046.872609874252"), Expression: "m2"},
	},
	{
		ID: "GallonUS", PrimaryCode: "[gal_us]", Names: []string{"US gallon"},
		Classification: ClassificationUSLengths, Property: PropertyVolume,
		Definition: Definition{Kind: DefDimensional, Value: decimal.RequireFromString("3.785411784"), Expression: "l"},
	},
	{
		ID: "PoundAvoirdupois", PrimaryCode: "[lb_av]", Names: []string{"pound"},
		Classification: ClassificationUSLengths, Property: PropertyMass,
		Definition: Definition{Kind: DefDimensional, Value: decimal.RequireFromString("0.45359237"), Expression: "kg"},
	},

	// --- Chemical/clinical (Dimensional, arbitrary) ---
	{
		ID: "Equivalents", PrimaryCode: "eq", Names: []string{"equivalents"},
		Classification: ClassificationChemical, Property: PropertyAmountOfSubstance,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "mol"},
	},
	{
		ID: "Osmole", PrimaryCode: "osm", Names: []string{"osmole"},
		Classification: ClassificationChemical, Property: PropertyAmountOfSubstance,
		IsMetric: true,
		Definition: Definition{Kind: DefDimensional, Value: decimal.NewFromInt(1), Expression: "mol"},
	},
	{
		ID: "InternationalUnit", PrimaryCode: "[iU]", SecondaryCode: "[IU]", Names: []string{"international unit"},
		Classification: ClassificationChemical, Property: PropertyArbitrary,
		IsArbitrary: true,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.NewFromInt(1)},
	},
	{
		ID: "ArbitraryUnit", PrimaryCode: "[arb'U]", Names: []string{"arbitrary unit"},
		Classification: ClassificationChemical, Property: PropertyArbitrary,
		IsArbitrary: true,
		Definition: Definition{Kind: DefNonDimensional, Value: decimal.NewFromInt(1)},
	},

	// --- Special (function-pair) units ---
	{
		ID: "DegreeCelsius", PrimaryCode: "Cel", Names: []string{"degree Celsius"},
		Classification: ClassificationHeat, Property: PropertyTemperature,
		IsMetric: true, IsSpecial: true,
		Definition: Definition{Kind: DefDimensionalSpecial, Value: decimal.NewFromInt(1), Expression: "K", Function: FuncCelsius},
	},
	{
		ID: "DegreeFahrenheit", PrimaryCode: "[degF]", Names: []string{"degree Fahrenheit"},
		Classification: ClassificationHeat, Property: PropertyTemperature,
		IsSpecial: true,
		Definition: Definition{Kind: DefDimensionalSpecial, Value: decimal.NewFromInt(1), Expression: "K", Function: FuncFahrenheit},
	},
	{
		ID: "PH", PrimaryCode: "[pH]", Names: []string{"pH"},
		Classification: ClassificationChemical, Property: PropertyAcidity,
		IsSpecial: true,
		Definition: Definition{Kind: DefDimensionalSpecial, Value: decimal.NewFromInt(1), Expression: "mol/l", Function: FuncPH},
	},
	{
		ID: "PrismDiopter", PrimaryCode: "[p'diop]", Names: []string{"prism diopter"},
		Classification: ClassificationMisc, Property: PropertyRefractionOfPrism,
		IsSpecial: true,
		Definition: Definition{Kind: DefDimensionalSpecial, Value: decimal.NewFromInt(1), Expression: "rad", Function: FuncPrismDiopter},
	},
	{
		ID: "Neper", PrimaryCode: "Np", Names: []string{"neper"},
		Classification: ClassificationLevels, Property: PropertyDimensionless,
		IsMetric: true, IsSpecial: true,
		Definition: Definition{Kind: DefNonDimensionalSpecial, Value: decimal.NewFromInt(1), Function: FuncNeper},
	},
	{
		ID: "Bel", PrimaryCode: "B", Names: []string{"bel"},
		Classification: ClassificationLevels, Property: PropertyDimensionless,
		IsMetric: true, IsSpecial: true,
		Definition: Definition{Kind: DefNonDimensionalSpecial, Value: decimal.NewFromInt(1), Function: FuncBel},
	},
	{
		ID: "HomeopathicPotencyDecimal", PrimaryCode: "[hp_X]", Names: []string{"homeopathic potency of decimal series"},
		Classification: ClassificationChemical, Property: PropertyDimensionless,
		IsSpecial: true,
		Definition: Definition{Kind: DefNonDimensionalSpecial, Value: decimal.NewFromInt(1), Function: FuncHomeopathicX},
	},
}
