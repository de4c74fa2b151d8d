package patterns

var hyundai = Family{
	Make: "Hyundai",
	WMI: map[string]map[string]string{
		"KMH": {
			"D8": "Elantra",
			"DH": "Elantra",
			"DU": "Elantra",
			"L3": "Elantra",
			"E2": "Sonata",
			"EC": "Sonata",
			"L4": "Sonata",
		},
		"5NP": {
			"D8": "Elantra",
			"DH": "Elantra",
			"LL": "Elantra",
			"E2": "Sonata",
			"EB": "Sonata",
			"EH": "Sonata",
		},
		"KM8": {
			"J2": "Tucson",
			"J3": "Tucson",
			"SM": "Santa Fe",
			"SR": "Santa Fe",
			"K1": "Kona",
			"R4": "Palisade",
			"KR": "Ioniq 5",
		},
		"5NM": {
			"S3": "Santa Fe",
			"SG": "Santa Fe",
			"J3": "Tucson",
		},
	},
}

var kia = Family{
	Make: "Kia",
	WMI: map[string]map[string]string{
		"KNA": {
			"FK": "Forte",
			"FX": "Forte",
			"GD": "Optima",
			"GE": "Optima",
			"DE": "Soul",
			"C3": "EV6",
		},
		"KND": {
			"PB": "Sportage",
			"PC": "Sportage",
			"PM": "Sportage",
			"JP": "Soul",
			"MB": "Sedona",
		},
		"5XX": {
			"GT": "Optima",
			"G4": "K5",
			"GU": "K5",
		},
		"5XY": {
			"P5": "Telluride",
			"PG": "Sorento",
			"PH": "Sorento",
			"RL": "Sorento",
		},
	},
}
