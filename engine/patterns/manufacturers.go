package patterns

// builtinManufacturers assigns a make to WMIs regardless of whether any
// model pattern exists for them. WMIs with a pattern table are added by
// NewSet when missing here.
var builtinManufacturers = map[string]string{
	// Nissan / Infiniti
	"JN1": "Nissan", "JN8": "Nissan", "JN6": "Nissan", "1N4": "Nissan", "1N6": "Nissan",
	"3N1": "Nissan", "3N6": "Nissan", "5N1": "Nissan", "JNK": "Infiniti", "JNR": "Infiniti",
	"5N3": "Infiniti",
	// Honda / Acura
	"1HG": "Honda", "2HG": "Honda", "3HG": "Honda", "19X": "Honda", "SHH": "Honda",
	"5J6": "Honda", "2HK": "Honda", "7FA": "Honda", "5FN": "Honda", "5FP": "Honda",
	"JHM": "Honda", "JHL": "Honda", "3CZ": "Honda",
	"19U": "Acura", "JH4": "Acura", "5J8": "Acura", "2HN": "Acura", "19V": "Acura",
	// Toyota / Lexus
	"4T1": "Toyota", "4T3": "Toyota", "4T4": "Toyota", "2T1": "Toyota", "2T3": "Toyota",
	"5YF": "Toyota", "JTD": "Toyota", "JTM": "Toyota", "JTE": "Toyota", "JTN": "Toyota",
	"JT2": "Toyota", "JT3": "Toyota", "JT4": "Toyota", "5TD": "Toyota", "5TF": "Toyota",
	"5TE": "Toyota", "3TM": "Toyota", "3TY": "Toyota",
	"JTH": "Lexus", "JTJ": "Lexus", "2T2": "Lexus", "58A": "Lexus",
	// Ford / Lincoln
	"1FA": "Ford", "1FT": "Ford", "1FM": "Ford", "1FD": "Ford", "2FA": "Ford",
	"2FM": "Ford", "2FT": "Ford", "3FA": "Ford", "3FM": "Ford", "3FT": "Ford",
	"1ZV": "Ford", "WF0": "Ford",
	"1LN": "Lincoln", "2LM": "Lincoln", "3LN": "Lincoln", "5LM": "Lincoln",
	// General Motors
	"1G1": "Chevrolet", "1GC": "Chevrolet", "1GN": "Chevrolet", "2G1": "Chevrolet",
	"2GN": "Chevrolet", "3G1": "Chevrolet", "3GN": "Chevrolet", "3GC": "Chevrolet",
	"KL1": "Chevrolet", "KL7": "Chevrolet",
	"1GT": "GMC", "1GK": "GMC", "2GT": "GMC", "3GT": "GMC", "1GD": "GMC",
	"1G4": "Buick", "2G4": "Buick", "KL4": "Buick",
	"1G6": "Cadillac", "1GY": "Cadillac",
	// Stellantis
	"1C3": "Chrysler", "2C4": "Chrysler", "2C3": "Dodge", "1B3": "Dodge", "2B3": "Dodge",
	"1J4": "Jeep", "1J8": "Jeep", "1C4": "Jeep", "1C6": "Ram", "3C6": "Ram",
	"3D7": "Ram", "ZFA": "Fiat", "3C3": "Fiat", "ZAR": "Alfa Romeo", "ZAS": "Alfa Romeo",
	// Hyundai / Kia / Genesis
	"KMH": "Hyundai", "KM8": "Hyundai", "5NP": "Hyundai", "5NM": "Hyundai",
	"KNA": "Kia", "KND": "Kia", "KNC": "Kia", "5XX": "Kia", "5XY": "Kia", "3KP": "Kia",
	"KMT": "Genesis", "KMU": "Genesis",
	// Subaru / Mazda / Mitsubishi
	"JF1": "Subaru", "JF2": "Subaru", "4S3": "Subaru", "4S4": "Subaru", "4S6": "Subaru",
	"JM1": "Mazda", "JM3": "Mazda", "JMZ": "Mazda", "4F2": "Mazda", "4F4": "Mazda",
	"3MZ": "Mazda", "3MV": "Mazda",
	"JA3": "Mitsubishi", "JA4": "Mitsubishi", "4A3": "Mitsubishi", "ML3": "Mitsubishi",
	// Tesla
	"5YJ": "Tesla", "7SA": "Tesla", "7G2": "Tesla", "LRW": "Tesla", "XP7": "Tesla",
	// Europe
	"WBA": "BMW", "WBS": "BMW", "WBX": "BMW", "WBY": "BMW", "5UX": "BMW",
	"5YM": "BMW", "4US": "BMW", "WMW": "Mini",
	"WDB": "Mercedes-Benz", "WDD": "Mercedes-Benz", "WDC": "Mercedes-Benz",
	"4JG": "Mercedes-Benz", "55S": "Mercedes-Benz", "W1K": "Mercedes-Benz",
	"W1N": "Mercedes-Benz", "W1V": "Mercedes-Benz",
	"WAU": "Audi", "WA1": "Audi", "WUA": "Audi", "TRU": "Audi",
	"WVW": "Volkswagen", "WVG": "Volkswagen", "1VW": "Volkswagen", "3VW": "Volkswagen",
	"3VV": "Volkswagen", "WV1": "Volkswagen", "WV2": "Volkswagen",
	"WP0": "Porsche", "WP1": "Porsche",
	"YV1": "Volvo", "YV4": "Volvo",
	"SAJ": "Jaguar", "SAL": "Land Rover",
}
