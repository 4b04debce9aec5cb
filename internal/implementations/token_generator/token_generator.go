package tokengenerator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/reset"
)

const tokenByteLength = 32

// Generator produces reset tokens from the operating system CSPRNG.
// 32 random bytes keep brute-force guessing infeasible for the token's
// whole exposure window.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateToken() reset.Token {
	b := make([]byte, tokenByteLength)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return reset.Token(base64.RawURLEncoding.EncodeToString(b))
}
