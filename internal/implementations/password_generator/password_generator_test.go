package passwordgenerator

import (
	"strings"
	"testing"

	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
)

func TestPasswordGenerator(t *testing.T) {
	generator := NewGenerator()
	passwords := make(map[user.RawPassword]struct{})
	for i := 0; i < 1000; i++ {
		password := generator.GeneratePassword()
		raw := string(password)
		if len(raw) != passwordLength {
			t.Fatalf("unexpected password length: %d", len(raw))
		}
		if !strings.ContainsAny(raw, string(lowerChars)) {
			t.Fatal("password has no lower-case letter")
		}
		if !strings.ContainsAny(raw, string(upperChars)) {
			t.Fatal("password has no upper-case letter")
		}
		if !strings.ContainsAny(raw, string(digitChars)) {
			t.Fatal("password has no digit")
		}
		if !strings.ContainsAny(raw, string(symbolChars)) {
			t.Fatal("password has no symbol")
		}
		if _, ok := passwords[password]; ok {
			t.Fatal("password already exists")
		}
		passwords[password] = struct{}{}
	}
}
