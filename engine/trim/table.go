package trim

var builtinPatterns = map[string]map[string]Pattern{
	"Honda": {
		"Civic": {
			Codes: map[byte]Code{
				'E': {Name: "EX"},
				'L': {Name: "LX"},
				'S': {Name: "Sport"},
				'T': {Name: "Touring"},
				'X': {Name: "EX-L"},
				'R': {Name: "Type R", Since: 2017},
			},
			Default: "LX",
		},
		"Accord": {
			Codes: map[byte]Code{
				'4': {Name: "LX"},
				'5': {Name: "EX"},
				'6': {Name: "EX-L"},
				'8': {Name: "EX-L V6"},
				'9': {Name: "Touring", Since: 2013},
			},
			Default: "LX",
		},
		"CR-V": {
			Codes: map[byte]Code{
				'3': {Name: "LX"},
				'5': {Name: "EX"},
				'7': {Name: "EX-L"},
				'9': {Name: "Touring", Since: 2015},
			},
			Default: "LX",
		},
	},
	"Toyota": {
		"Camry": {
			Codes: map[byte]Code{
				'L': {Name: "LE"},
				'S': {Name: "SE"},
				'X': {Name: "XLE"},
				'Z': {Name: "XSE", Since: 2018},
			},
			Default: "LE",
		},
		"Corolla": {
			Codes: map[byte]Code{
				'L': {Name: "L"},
				'E': {Name: "LE"},
				'S': {Name: "SE"},
				'X': {Name: "XLE"},
			},
			Default: "LE",
		},
		"RAV4": {
			Codes: map[byte]Code{
				'L': {Name: "LE"},
				'X': {Name: "XLE"},
				'A': {Name: "Adventure", Since: 2019},
				'M': {Name: "Limited"},
			},
			Default: "LE",
		},
	},
	"Nissan": {
		"Altima": {
			Codes: map[byte]Code{
				'S': {Name: "S"},
				'V': {Name: "SV"},
				'R': {Name: "SR"},
				'L': {Name: "SL"},
				'P': {Name: "Platinum", Since: 2019},
			},
			Default: "S",
		},
		"Rogue": {
			Codes: map[byte]Code{
				'S': {Name: "S"},
				'V': {Name: "SV"},
				'L': {Name: "SL"},
			},
			Default: "S",
		},
	},
	"Ford": {
		"F-150": {
			Position: 7,
			Codes: map[byte]Code{
				'B': {Name: "XL"},
				'C': {Name: "XLT"},
				'E': {Name: "Lariat"},
				'G': {Name: "King Ranch"},
				'R': {Name: "Raptor", Since: 2010},
			},
			Default: "XL",
		},
	},
}
