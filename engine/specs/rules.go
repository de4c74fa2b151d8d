package specs

const (
	sedan  = "Sedan"
	suv    = "SUV"
	pickup = "Pickup Truck"
)

var builtinProfiles = map[string]Profile{
	"Honda": {
		Default: Specs{Engine: "2.4L I4", Transmission: "Automatic", FuelType: "Gasoline", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "civic", MinYear: 2016, Specs: Specs{Engine: "1.5L Turbo I4", Transmission: "CVT"}},
			{Model: "civic", MinYear: 2006, Specs: Specs{Engine: "1.8L I4", Transmission: "5-Speed Automatic"}},
			{Model: "civic", Specs: Specs{Engine: "1.7L I4", Transmission: "4-Speed Automatic"}},
			{Model: "accord", MinYear: 2018, Specs: Specs{Engine: "1.5L Turbo I4", Transmission: "CVT"}},
			{Model: "accord", MinYear: 2013, Specs: Specs{Engine: "2.4L I4", Transmission: "CVT"}},
			{Model: "accord", Specs: Specs{Engine: "2.4L I4", Transmission: "5-Speed Automatic"}},
			{Model: "cr-v", MinYear: 2017, Specs: Specs{Engine: "1.5L Turbo I4", Transmission: "CVT", BodyStyle: suv}},
			{Model: "cr-v", Specs: Specs{Engine: "2.4L I4", Transmission: "5-Speed Automatic", BodyStyle: suv}},
			{Model: "hr-v", Specs: Specs{Engine: "1.8L I4", Transmission: "CVT", BodyStyle: suv}},
			{Model: "pilot", Specs: Specs{Engine: "3.5L V6", Transmission: "9-Speed Automatic", BodyStyle: suv}},
			{Model: "odyssey", Specs: Specs{Engine: "3.5L V6", Transmission: "10-Speed Automatic", BodyStyle: "Minivan"}},
			{Model: "ridgeline", Specs: Specs{Engine: "3.5L V6", Transmission: "9-Speed Automatic", BodyStyle: pickup}},
			{Model: "fit", Specs: Specs{Engine: "1.5L I4", Transmission: "CVT", BodyStyle: "Hatchback"}},
			{Model: "insight", Specs: Specs{Engine: "1.5L I4 Hybrid", Transmission: "CVT", FuelType: "Hybrid"}},
		},
	},
	"Acura": {
		Default: Specs{Engine: "2.0L Turbo I4", Transmission: "10-Speed Automatic", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "mdx", Specs: Specs{Engine: "3.5L V6", BodyStyle: suv}},
			{Model: "rdx", Specs: Specs{BodyStyle: suv}},
			{Model: "nsx", Specs: Specs{Engine: "3.5L Twin-Turbo V6 Hybrid", Transmission: "9-Speed Dual-Clutch", FuelType: "Hybrid", BodyStyle: "Coupe"}},
		},
	},
	"Toyota": {
		Default: Specs{Engine: "2.5L I4", Transmission: "Automatic", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "camry hybrid", Specs: Specs{Engine: "2.5L I4 Hybrid", Transmission: "eCVT", FuelType: "Hybrid"}},
			{Model: "camry", MinYear: 2018, Specs: Specs{Engine: "2.5L I4", Transmission: "8-Speed Automatic"}},
			{Model: "camry", Specs: Specs{Engine: "2.5L I4", Transmission: "6-Speed Automatic"}},
			{Model: "corolla", MinYear: 2020, Specs: Specs{Engine: "2.0L I4", Transmission: "CVT"}},
			{Model: "corolla", Specs: Specs{Engine: "1.8L I4", Transmission: "4-Speed Automatic"}},
			{Model: "prius", Specs: Specs{Engine: "1.8L I4 Hybrid", Transmission: "eCVT", FuelType: "Hybrid", BodyStyle: "Hatchback"}},
			{Model: "rav4", MinYear: 2019, Specs: Specs{Engine: "2.5L I4", Transmission: "8-Speed Automatic", BodyStyle: suv}},
			{Model: "rav4", Specs: Specs{Engine: "2.5L I4", Transmission: "6-Speed Automatic", BodyStyle: suv}},
			{Model: "highlander", Specs: Specs{Engine: "3.5L V6", Transmission: "8-Speed Automatic", BodyStyle: suv}},
			{Model: "4runner", Specs: Specs{Engine: "4.0L V6", Transmission: "5-Speed Automatic", BodyStyle: suv}},
			{Model: "sienna", Specs: Specs{Engine: "3.5L V6", Transmission: "8-Speed Automatic", BodyStyle: "Minivan"}},
			{Model: "tacoma", Specs: Specs{Engine: "3.5L V6", Transmission: "6-Speed Automatic", BodyStyle: pickup}},
			{Model: "tundra", MinYear: 2022, Specs: Specs{Engine: "3.5L Twin-Turbo V6", Transmission: "10-Speed Automatic", BodyStyle: pickup}},
			{Model: "tundra", Specs: Specs{Engine: "5.7L V8", Transmission: "6-Speed Automatic", BodyStyle: pickup}},
		},
	},
	"Lexus": {
		Default: Specs{Engine: "3.5L V6", Transmission: "8-Speed Automatic", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "rx", Specs: Specs{BodyStyle: suv}},
			{Model: "nx", Specs: Specs{Engine: "2.5L I4", BodyStyle: suv}},
			{Model: "gx", Specs: Specs{Engine: "4.6L V8", BodyStyle: suv}},
		},
	},
	"Nissan": {
		Default: Specs{Engine: "2.5L I4", Transmission: "CVT", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "leaf", Specs: Specs{Engine: "Electric Motor", Transmission: "Single-Speed", FuelType: "Electric", BodyStyle: "Hatchback"}},
			{Model: "altima", MinYear: 2019, Specs: Specs{Engine: "2.5L I4", Transmission: "CVT"}},
			{Model: "sentra", Specs: Specs{Engine: "2.0L I4", Transmission: "CVT"}},
			{Model: "versa", Specs: Specs{Engine: "1.6L I4", Transmission: "CVT"}},
			{Model: "maxima", Specs: Specs{Engine: "3.5L V6", Transmission: "CVT"}},
			{Model: "rogue", Specs: Specs{BodyStyle: suv}},
			{Model: "murano", Specs: Specs{Engine: "3.5L V6", BodyStyle: suv}},
			{Model: "pathfinder", Specs: Specs{Engine: "3.5L V6", BodyStyle: suv}},
			{Model: "armada", Specs: Specs{Engine: "5.6L V8", Transmission: "7-Speed Automatic", BodyStyle: suv}},
			{Model: "frontier", Specs: Specs{Engine: "3.8L V6", Transmission: "9-Speed Automatic", BodyStyle: pickup}},
			{Model: "titan", Specs: Specs{Engine: "5.6L V8", Transmission: "9-Speed Automatic", BodyStyle: pickup}},
			{Model: "z", Specs: Specs{Engine: "3.7L V6", Transmission: "7-Speed Automatic", BodyStyle: "Coupe"}},
			{Model: "gt-r", Specs: Specs{Engine: "3.8L Twin-Turbo V6", Transmission: "6-Speed Dual-Clutch", BodyStyle: "Coupe"}},
		},
	},
	"Ford": {
		Default: Specs{Engine: "2.0L I4", Transmission: "Automatic", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "f-150", MinYear: 2015, Specs: Specs{Engine: "3.5L EcoBoost V6", Transmission: "10-Speed Automatic", BodyStyle: pickup}},
			{Model: "f-150", Specs: Specs{Engine: "5.0L V8", Transmission: "6-Speed Automatic", BodyStyle: pickup}},
			{Model: "super duty", Specs: Specs{Engine: "6.7L Power Stroke V8", Transmission: "10-Speed Automatic", FuelType: "Diesel", BodyStyle: pickup}},
			{Model: "ranger", Specs: Specs{Engine: "2.3L EcoBoost I4", Transmission: "10-Speed Automatic", BodyStyle: pickup}},
			{Model: "mach-e", Specs: Specs{Engine: "Electric Motor", Transmission: "Single-Speed", FuelType: "Electric", BodyStyle: suv}},
			{Model: "mustang", MinYear: 2015, Specs: Specs{Engine: "5.0L V8", Transmission: "10-Speed Automatic", BodyStyle: "Coupe"}},
			{Model: "mustang", Specs: Specs{Engine: "4.6L V8", Transmission: "5-Speed Automatic", BodyStyle: "Coupe"}},
			{Model: "escape", Specs: Specs{Engine: "1.5L EcoBoost I3", Transmission: "8-Speed Automatic", BodyStyle: suv}},
			{Model: "explorer", Specs: Specs{Engine: "2.3L EcoBoost I4", Transmission: "10-Speed Automatic", BodyStyle: suv}},
			{Model: "expedition", Specs: Specs{Engine: "3.5L EcoBoost V6", Transmission: "10-Speed Automatic", BodyStyle: suv}},
			{Model: "bronco", Specs: Specs{Engine: "2.3L EcoBoost I4", Transmission: "10-Speed Automatic", BodyStyle: suv}},
			{Model: "edge", Specs: Specs{Engine: "2.0L EcoBoost I4", Transmission: "8-Speed Automatic", BodyStyle: suv}},
		},
	},
	"Chevrolet": {
		Default: Specs{Engine: "1.5L Turbo I4", Transmission: "Automatic", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "silverado", Specs: Specs{Engine: "5.3L V8", Transmission: "10-Speed Automatic", BodyStyle: pickup}},
			{Model: "colorado", Specs: Specs{Engine: "3.6L V6", Transmission: "8-Speed Automatic", BodyStyle: pickup}},
			{Model: "tahoe", Specs: Specs{Engine: "5.3L V8", Transmission: "10-Speed Automatic", BodyStyle: suv}},
			{Model: "suburban", Specs: Specs{Engine: "5.3L V8", Transmission: "10-Speed Automatic", BodyStyle: suv}},
			{Model: "equinox", Specs: Specs{BodyStyle: suv}},
			{Model: "traverse", Specs: Specs{Engine: "3.6L V6", Transmission: "9-Speed Automatic", BodyStyle: suv}},
			{Model: "corvette", Specs: Specs{Engine: "6.2L V8", Transmission: "8-Speed Dual-Clutch", BodyStyle: "Coupe"}},
			{Model: "camaro", Specs: Specs{Engine: "2.0L Turbo I4", Transmission: "8-Speed Automatic", BodyStyle: "Coupe"}},
			{Model: "bolt", Specs: Specs{Engine: "Electric Motor", Transmission: "Single-Speed", FuelType: "Electric", BodyStyle: "Hatchback"}},
		},
	},
	"Tesla": {
		Default: Specs{Engine: "Electric Motor", Transmission: "Single-Speed", FuelType: "Electric", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "model x", Specs: Specs{Engine: "Dual Motor", BodyStyle: suv}},
			{Model: "model y", Specs: Specs{Engine: "Dual Motor", BodyStyle: suv}},
			{Model: "cybertruck", Specs: Specs{Engine: "Tri Motor", BodyStyle: pickup}},
		},
	},
	"Hyundai": {
		Default: Specs{Engine: "2.0L I4", Transmission: "Automatic", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "ioniq 5", Specs: Specs{Engine: "Electric Motor", Transmission: "Single-Speed", FuelType: "Electric", BodyStyle: suv}},
			{Model: "elantra", MinYear: 2021, Specs: Specs{Transmission: "IVT"}},
			{Model: "sonata", Specs: Specs{Engine: "2.5L I4", Transmission: "8-Speed Automatic"}},
			{Model: "tucson", Specs: Specs{Engine: "2.5L I4", Transmission: "8-Speed Automatic", BodyStyle: suv}},
			{Model: "santa fe", Specs: Specs{Engine: "2.5L I4", Transmission: "8-Speed Automatic", BodyStyle: suv}},
			{Model: "palisade", Specs: Specs{Engine: "3.8L V6", Transmission: "8-Speed Automatic", BodyStyle: suv}},
			{Model: "kona", Specs: Specs{BodyStyle: suv}},
		},
	},
	"Kia": {
		Default: Specs{Engine: "2.0L I4", Transmission: "Automatic", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "ev6", Specs: Specs{Engine: "Electric Motor", Transmission: "Single-Speed", FuelType: "Electric", BodyStyle: suv}},
			{Model: "telluride", Specs: Specs{Engine: "3.8L V6", Transmission: "8-Speed Automatic", BodyStyle: suv}},
			{Model: "sorento", Specs: Specs{Engine: "2.5L I4", Transmission: "8-Speed Automatic", BodyStyle: suv}},
			{Model: "sportage", Specs: Specs{Engine: "2.5L I4", Transmission: "8-Speed Automatic", BodyStyle: suv}},
			{Model: "soul", Specs: Specs{Transmission: "IVT", BodyStyle: "Hatchback"}},
			{Model: "sedona", Specs: Specs{Engine: "3.3L V6", Transmission: "8-Speed Automatic", BodyStyle: "Minivan"}},
		},
	},
	"Subaru": {
		Default: Specs{Engine: "2.5L H4", Transmission: "CVT", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "wrx", Specs: Specs{Engine: "2.4L Turbo H4", Transmission: "6-Speed Manual"}},
			{Model: "brz", Specs: Specs{Engine: "2.4L H4", Transmission: "6-Speed Manual", BodyStyle: "Coupe"}},
			{Model: "impreza", Specs: Specs{Engine: "2.0L H4"}},
			{Model: "crosstrek", Specs: Specs{Engine: "2.0L H4", BodyStyle: suv}},
			{Model: "forester", Specs: Specs{BodyStyle: suv}},
			{Model: "outback", Specs: Specs{BodyStyle: "Wagon"}},
			{Model: "ascent", Specs: Specs{Engine: "2.4L Turbo H4", BodyStyle: suv}},
		},
	},
	"Mazda": {
		Default: Specs{Engine: "2.5L I4", Transmission: "6-Speed Automatic", BodyStyle: sedan},
		Rules: []Rule{
			{Model: "mazda3", Specs: Specs{Engine: "2.0L I4"}},
			{Model: "mx-5", Specs: Specs{Engine: "2.0L I4", Transmission: "6-Speed Manual", BodyStyle: "Convertible"}},
			{Model: "cx-", Specs: Specs{BodyStyle: suv}},
		},
	},
	"Ram": {
		Default: Specs{Engine: "5.7L HEMI V8", Transmission: "8-Speed Automatic", BodyStyle: pickup},
	},
	"Jeep": {
		Default: Specs{Engine: "3.6L V6", Transmission: "8-Speed Automatic", BodyStyle: suv},
	},
	"GMC": {
		Default: Specs{Engine: "5.3L V8", Transmission: "10-Speed Automatic", BodyStyle: pickup},
	},
	"BMW": {
		Default: Specs{Engine: "2.0L Turbo I4", Transmission: "8-Speed Automatic", BodyStyle: sedan},
	},
	"Mercedes-Benz": {
		Default: Specs{Engine: "2.0L Turbo I4", Transmission: "9-Speed Automatic", BodyStyle: sedan},
	},
}
