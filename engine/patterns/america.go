package patterns

var ford = Family{
	Make: "Ford",
	WMI: map[string]map[string]string{
		"1FA": {
			"6P8": "Mustang",
			"6P0": "Fusion",
			"HP0": "Fusion",
			"DP0": "Fusion",
			"DP3": "Focus",
			"HP3": "Focus",
		},
		// Trucks carry cab and drive in positions 5-7; the wide keys pin
		// the F-150 series before the three-character fallbacks apply.
		"1FT": {
			"FW1E": "F-150",
			"EW1E": "F-150",
			"EW1C": "F-150",
			"EX1C": "F-150",
			"FW1":  "F-150",
			"EW1":  "F-150",
			"EX1":  "F-150",
			"7W2":  "F-250 Super Duty",
			"8W3":  "F-350 Super Duty",
			"ER4":  "Ranger",
		},
		"1FM": {
			"CU0": "Escape",
			"CU9": "Escape",
			"5K8": "Explorer",
			"SK8": "Explorer",
			"EE5": "Bronco",
			"JU1": "Expedition",
		},
		"2FM": {
			"PK3": "Edge",
			"PK4": "Edge",
			"DK3": "Edge",
		},
		"3FA": {
			"6P0": "Fusion",
			"HP0": "Fusion",
		},
		"3FM": {
			"TK1": "Mustang Mach-E",
			"TK3": "Mustang Mach-E",
		},
	},
}

var chevrolet = Family{
	Make: "Chevrolet",
	WMI: map[string]map[string]string{
		"1G1": {
			"ZB": "Malibu",
			"ZD": "Malibu",
			"ZE": "Malibu",
			"FB": "Camaro",
			"FH": "Camaro",
			"YB": "Corvette",
			"YY": "Corvette",
			"PC": "Cruze",
			"BE": "Cruze",
			"JC": "Cavalier",
			"FY": "Bolt EV",
			"FZ": "Bolt EV",
		},
		"1GC": {
			"UY": "Silverado 1500",
			"VK": "Silverado 1500",
			"RY": "Silverado 1500",
			"YV": "Silverado 2500HD",
			"GT": "Colorado",
			"HS": "Colorado",
		},
		"1GN": {
			"SKJ": "Suburban",
			"SK":  "Tahoe",
			"SC":  "Tahoe",
			"ER":  "Traverse",
			"EV":  "Traverse",
		},
		"2GN": {
			"AX": "Equinox",
			"FL": "Equinox",
		},
		"3GN": {
			"AX": "Equinox",
			"KB": "Blazer",
		},
		"KL7": {
			"CJ": "Trax",
		},
	},
}

// Tesla encodes the model line in position 4 alone.
var tesla = Family{
	Make: "Tesla",
	WMI: map[string]map[string]string{
		"5YJ": {
			"3": "Model 3",
			"S": "Model S",
			"X": "Model X",
			"Y": "Model Y",
		},
		"7SA": {
			"3": "Model 3",
			"S": "Model S",
			"X": "Model X",
			"Y": "Model Y",
		},
		"7G2": {
			"C": "Cybertruck",
		},
		"LRW": {
			"3": "Model 3",
			"Y": "Model Y",
		},
	},
}
