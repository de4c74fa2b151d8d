package patterns

import "sync"

// Default returns the built-in pattern set.
var Default = sync.OnceValue(func() *Set {
	s, err := NewSet(builtinFamilies(), builtinManufacturers)
	if err != nil {
		panic(err)
	}
	return s
})

func builtinFamilies() []Family {
	return []Family{
		nissan, honda, acura, toyota, lexus,
		hyundai, kia, subaru, mazda,
		ford, chevrolet, tesla,
	}
}
