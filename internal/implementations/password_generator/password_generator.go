package passwordgenerator

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
)

const passwordLength = 16

var (
	lowerChars  = []rune("abcdefghijkmnopqrstuvwxyz")
	upperChars  = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ")
	digitChars  = []rune("23456789")
	symbolChars = []rune("!@#$%^&*-_+=")
	allChars    = join(lowerChars, upperChars, digitChars, symbolChars)
)

// Generator produces one-time passwords from the operating system
// CSPRNG. Every password contains at least one lower-case letter, one
// upper-case letter, one digit and one symbol.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GeneratePassword() user.RawPassword {
	b := make([]rune, passwordLength)
	b[0] = pick(lowerChars)
	b[1] = pick(upperChars)
	b[2] = pick(digitChars)
	b[3] = pick(symbolChars)
	for i := 4; i < passwordLength; i++ {
		b[i] = pick(allChars)
	}
	shuffle(b)
	return user.RawPassword(b)
}

func pick(chars []rune) rune {
	ix, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
	if err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return chars[ix.Int64()]
}

func shuffle(b []rune) {
	for i := len(b) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			panic(fmt.Sprintf("could not read random bytes: %v", err))
		}
		b[i], b[j.Int64()] = b[j.Int64()], b[i]
	}
}

func join(groups ...[]rune) []rune {
	var all []rune
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
