package data

import (
	"math/rand"

	"github.com/samber/lo"
)

// firstNames and surnames make up the names of the AI drivers
var (
	firstNames = []string{
		"James", "Nigel", "Ayrton", "Alain", "Gerhard", "Michele", "Keke", "Niki",
		"Mary", "Lella", "Desire", "Giovanna", "Sarah", "Divina", "Susie", "Maria",
	}
	surnames = []string{
		"Hunt", "Mansell", "Berger", "Alboreto", "Rosberg", "Lauda", "Prost", "Patrese",
		"Lombardi", "Wilson", "Amati", "Fisher", "Galica", "Wolff", "Teresa", "Warwick",
	}
)

// MaxDriverNames is the number of distinct names DriverNames can produce
var MaxDriverNames = len(surnames)

// DriverNames returns n names such as "N. Mansell" drawn with rng. Surnames
// do not repeat until all of them are used.
func DriverNames(rng *rand.Rand, n int) []string {
	order := rng.Perm(len(surnames))
	return lo.Times(n, func(i int) string {
		first := firstNames[rng.Intn(len(firstNames))]
		return first[:1] + ". " + surnames[order[i%len(order)]]
	})
}
