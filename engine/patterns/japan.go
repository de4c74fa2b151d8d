package patterns

var nissan = Family{
	Make: "Nissan",
	WMI: map[string]map[string]string{
		"JN1": {
			"BEV": "Altima",
			"AZ3": "370Z",
			"AZ":  "350Z",
			"AR5": "GT-R",
			"BJ":  "Rogue Sport",
			"CA":  "Maxima",
			"BK":  "Cube",
			"AF":  "Juke",
			"AT":  "Rogue",
		},
		"JN8": {
			"AS": "Rogue",
			"AT": "Rogue",
			"AZ": "Murano",
			"AF": "Juke",
			"AY": "Armada",
			"AR": "Pathfinder",
		},
		"1N4": {
			"AL": "Altima",
			"BL": "Altima",
			"CL": "Altima",
			"AA": "Maxima",
			"AB": "Sentra",
			"AZ": "Leaf",
			"BA": "Versa",
		},
		"1N6": {
			"AD": "Frontier",
			"ED": "Frontier",
			"AA": "Titan",
			"BA": "Titan",
		},
		"3N1": {
			"AB": "Sentra",
			"CN": "Versa",
			"BC": "Versa",
			"CP": "Kicks",
		},
		"5N1": {
			"AT": "Rogue",
			"AZ": "Murano",
			"DR": "Pathfinder",
			"AR": "Pathfinder",
			"AA": "Armada",
			"BA": "Armada",
		},
	},
	// Nissan reuses line codes across plants, so these apply to any Nissan
	// WMI without a dedicated entry.
	Global: map[string]string{
		"AL": "Altima",
		"BL": "Altima",
		"AB": "Sentra",
		"AT": "Rogue",
		"AZ": "Murano",
		"AD": "Frontier",
		"CN": "Versa",
		"DR": "Pathfinder",
	},
}

var honda = Family{
	Make: "Honda",
	WMI: map[string]map[string]string{
		"1HG": {
			"CM": "Accord",
			"CP": "Accord",
			"CR": "Accord",
			"CV": "Accord",
			"CG": "Accord",
			"CD": "Accord",
			"CB": "Accord",
			"EJ": "Civic",
			"EM": "Civic",
			"ES": "Civic",
			"EG": "Civic",
			"EH": "Civic",
			"FA": "Civic",
			"FB": "Civic",
			"FC": "Civic",
			"FG": "Civic",
		},
		"2HG": {
			"EJ": "Civic",
			"ES": "Civic",
			"FA": "Civic",
			"FB": "Civic",
			"FC": "Civic",
			"FE": "Civic",
			"FG": "Civic",
		},
		"19X": {
			"FB": "Civic",
			"FC": "Civic",
			"FE": "Civic",
			"FL": "Civic",
			"ZE": "Insight",
		},
		"SHH": {
			"FK": "Civic",
		},
		"5J6": {
			"RE": "CR-V",
			"RM": "CR-V",
			"RS": "CR-V",
			"RT": "CR-V",
			"RW": "CR-V",
		},
		"2HK": {
			"RM": "CR-V",
			"RS": "CR-V",
			"RT": "CR-V",
			"RW": "CR-V",
		},
		"7FA": {
			"RW": "CR-V",
			"RS": "CR-V",
		},
		"5FN": {
			"YF": "Pilot",
			"YG": "Pilot",
			"RL": "Odyssey",
		},
		"5FP": {
			"YK": "Ridgeline",
		},
		"JHM": {
			"GD": "Fit",
			"GE": "Fit",
			"GK": "Fit",
			"ZE": "Insight",
			"ZF": "CR-Z",
			"AP": "S2000",
		},
		"3CZ": {
			"RU": "HR-V",
		},
	},
}

var acura = Family{
	Make: "Acura",
	WMI: map[string]map[string]string{
		"19U": {
			"UA": "TL",
			"UB": "TLX",
			"DE": "ILX",
		},
		"JH4": {
			"KA": "RL",
			"KB": "RL",
			"CL": "TSX",
			"CU": "TSX",
			"DC": "Integra",
			"NA": "NSX",
		},
		"5J8": {
			"TB": "RDX",
			"TC": "RDX",
			"YD": "MDX",
			"YE": "MDX",
		},
		"2HN": {
			"YD": "MDX",
		},
	},
}

var toyota = Family{
	Make: "Toyota",
	WMI: map[string]map[string]string{
		"4T1": {
			"BF": "Camry",
			"BE": "Camry",
			"B1": "Camry",
			"G1": "Camry",
			"K1": "Camry",
			"BD": "Camry Hybrid",
			"BK": "Avalon",
		},
		"4T3": {
			"ZF": "RAV4",
			"ZK": "Venza",
		},
		"2T1": {
			"BU": "Corolla",
			"BR": "Corolla",
			"BP": "Corolla",
			"BL": "Corolla",
			"KU": "Matrix",
		},
		"2T3": {
			"ZF": "RAV4",
			"WF": "RAV4",
			"RF": "RAV4",
			"BF": "RAV4",
			"W1": "RAV4",
		},
		"5YF": {
			"BU": "Corolla",
			"EP": "Corolla",
			"B4": "Corolla",
			"S4": "Corolla",
		},
		"JTD": {
			"KN": "Prius",
			"KB": "Prius",
			"KD": "Prius c",
			"BU": "Corolla",
			"BT": "Yaris",
			"KT": "Yaris",
		},
		"JTM": {
			"BF": "RAV4",
			"ZF": "RAV4",
			"RF": "RAV4",
			"WF": "RAV4",
			"W1": "RAV4",
		},
		"JTE": {
			"BU": "4Runner",
			"ZU": "4Runner",
			"RU": "4Runner",
		},
		"5TD": {
			"ZK": "Sienna",
			"YK": "Sienna",
			"KZ": "Highlander",
			"DK": "Highlander",
			"JK": "Highlander",
			"GZ": "Highlander",
		},
		"5TF": {
			"RM": "Tundra",
			"DY": "Tundra",
			"UY": "Tundra",
			"AX": "Tacoma",
			"CZ": "Tacoma",
		},
		"3TM": {
			"AZ": "Tacoma",
			"CZ": "Tacoma",
			"LU": "Tacoma",
			"MZ": "Tacoma",
			"JU": "Tacoma",
		},
	},
}

var lexus = Family{
	Make: "Lexus",
	WMI: map[string]map[string]string{
		"JTH": {
			"BK": "IS",
			"BE": "IS",
			"GZ": "GS",
			"FF": "LS",
			"BN": "ES",
		},
		"2T2": {
			"BK": "RX",
			"ZK": "RX",
			"HZ": "RX",
		},
		"JTJ": {
			"BZ": "RX",
			"GZ": "GX",
			"JM": "NX",
			"YA": "NX",
		},
		"58A": {
			"B1": "ES",
			"BZ": "ES",
			"Z1": "ES",
		},
	},
}

var subaru = Family{
	Make: "Subaru",
	WMI: map[string]map[string]string{
		"JF1": {
			"GP": "Impreza",
			"GJ": "Impreza",
			"GT": "Impreza",
			"VA": "WRX",
			"ZN": "BRZ",
			"ZC": "BRZ",
		},
		"JF2": {
			"SH": "Forester",
			"SJ": "Forester",
			"SK": "Forester",
			"GP": "Crosstrek",
			"GT": "Crosstrek",
		},
		"4S3": {
			"BM": "Legacy",
			"BN": "Legacy",
			"BW": "Legacy",
		},
		"4S4": {
			"BP": "Outback",
			"BS": "Outback",
			"BT": "Outback",
			"WM": "Ascent",
		},
	},
}

var mazda = Family{
	Make: "Mazda",
	WMI: map[string]map[string]string{
		"JM1": {
			"BK": "Mazda3",
			"BL": "Mazda3",
			"BM": "Mazda3",
			"BN": "Mazda3",
			"BP": "Mazda3",
			"GJ": "Mazda6",
			"GL": "Mazda6",
			"NA": "MX-5 Miata",
			"NB": "MX-5 Miata",
			"NC": "MX-5 Miata",
			"ND": "MX-5 Miata",
		},
		"JM3": {
			"KE": "CX-5",
			"KF": "CX-5",
			"TB": "CX-9",
			"TC": "CX-9",
			"DK": "CX-3",
			"DM": "CX-30",
			"ER": "CX-7",
		},
	},
}
