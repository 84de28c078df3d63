package crypto

import (
	"strings"
	"testing"
)

// cheap parameters keep the suite fast
func newTestHasher() *argonHasher {
	return &argonHasher{argonTime: 1, argonMemory: 1024, argonThreads: 1, argonKeyLen: 32}
}

func TestHash_FormatAndRandomSalt(t *testing.T) {
	h := newTestHasher()

	h1, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !strings.HasPrefix(h1, "$argon2id$v=19$m=1024,t=1,p=1$") {
		t.Fatalf("unexpected hash format: %s", h1)
	}
	if h1 == h2 {
		t.Fatalf("expected hashes of the same password to differ")
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	if _, err := newTestHasher().Hash(""); err != ErrEmptyPassword {
		t.Fatalf("err = %v, want ErrEmptyPassword", err)
	}
}

func TestVerify(t *testing.T) {
	h := newTestHasher()
	encoded, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("correct horse battery staple", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify(correct) = %v, %v; want true, nil", ok, err)
	}

	ok, err = h.Verify("wrong", encoded)
	if err != nil || ok {
		t.Fatalf("Verify(wrong) = %v, %v; want false, nil", ok, err)
	}
}

func TestVerify_UsesEncodedParameters(t *testing.T) {
	encoded, err := newTestHasher().Hash("pw")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := NewPasswordHasher().Verify("pw", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify with default hasher = %v, %v; want true, nil", ok, err)
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	h := newTestHasher()

	cases := []string{
		"",
		"plain-text",
		"$bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=x$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
	}
	for _, c := range cases {
		if _, err := h.Verify("pw", c); err == nil {
			t.Fatalf("Verify(%q) expected error", c)
		}
	}

	if _, err := h.Verify("pw", "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5"); err != ErrIncompatibleVersion {
		t.Fatalf("err = %v, want ErrIncompatibleVersion", err)
	}
}
