package tokengenerator

import (
	"testing"

	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/reset"
)

func TestTokenGenerator(t *testing.T) {
	generator := NewGenerator()
	tokens := make(map[reset.Token]struct{})
	for i := 0; i < 1000; i++ {
		token := generator.GenerateToken()
		if len(string(token)) < 43 {
			t.Fatalf("token is too short: %d", len(string(token)))
		}
		if _, ok := tokens[token]; ok {
			t.Fatalf("token already exists")
		}
		tokens[token] = struct{}{}
	}
}
