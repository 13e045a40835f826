package textproc

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		normalized string
		tokens     []string
	}{
		{
			name:       "punctuation and case",
			input:      "Hello, World! 123",
			normalized: "hello world 123",
			tokens:     []string{"hello", "world", "123"},
		},
		{
			name:       "empty",
			input:      "",
			normalized: "",
			tokens:     []string{},
		},
		{
			name:       "whitespace only",
			input:      " \t\n\u00a0\u3000 ",
			normalized: " \t\n\u00a0\u3000 ",
			tokens:     []string{},
		},
		{
			name:       "punctuation only",
			input:      "?!.,;:'\"()[]{}",
			normalized: "",
			tokens:     []string{},
		},
		{
			name:       "underscore is a word character",
			input:      "snake_case-Name",
			normalized: "snake_casename",
			tokens:     []string{"snake_casename"},
		},
		{
			name:       "unicode letters survive",
			input:      "Привет, Мир! Ça va? 東京",
			normalized: "привет мир ça va 東京",
			tokens:     []string{"привет", "мир", "ça", "va", "東京"},
		},
		{
			name:       "unicode numbers survive",
			input:      "½ + ² = Ⅻ",
			normalized: "½  ²  ⅻ",
			tokens:     []string{"½", "²", "ⅻ"},
		},
		{
			name:       "combining marks are stripped",
			input:      "cafe\u0301",
			normalized: "cafe",
			tokens:     []string{"cafe"},
		},
		{
			name:       "emoji and symbols are stripped",
			input:      "what's up 🚀 $100 @home #tag",
			normalized: "whats up  100 home tag",
			tokens:     []string{"whats", "up", "100", "home", "tag"},
		},
		{
			name:       "greek final sigma",
			input:      "ΟΔΟΣ ΚΑΙ ΣΑΣ.",
			normalized: "οδος και σας",
			tokens:     []string{"οδος", "και", "σας"},
		},
		{
			name:       "lone sigma is not final",
			input:      "Σ ΑΣΑ",
			normalized: "σ ασα",
			tokens:     []string{"σ", "ασα"},
		},
		{
			name:       "sigma before apostrophe and letter",
			input:      "ΑΣ'Α",
			normalized: "ασα",
			tokens:     []string{"ασα"},
		},
		{
			name:       "ascii separators split",
			input:      "a\x1cb\x1fc",
			normalized: "a\x1cb\x1fc",
			tokens:     []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Preprocess(tt.input)
			if view.Normalized != tt.normalized {
				t.Errorf("Normalized = %q, want %q", view.Normalized, tt.normalized)
			}
			if !reflect.DeepEqual(view.Tokens, tt.tokens) {
				t.Errorf("Tokens = %#v, want %#v", view.Tokens, tt.tokens)
			}
		})
	}
}

func TestTokenizeNeverNil(t *testing.T) {
	if got := Tokenize("   "); got == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func FuzzPreprocess(f *testing.F) {
	for _, seed := range []string{
		"Hello, World! 123",
		"",
		"   ",
		"EXIT",
		"Ça va? 東京 🚀",
		"cafe\u0301",
		"ΟΔΟΣ ΚΑΙ",
		"\xff\xfe invalid",
		"a\x1cb\u2028c\u0085d\v",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		view := Preprocess(input)

		if again := Normalize(view.Normalized); again != view.Normalized {
			t.Fatalf("normalization not idempotent: %q -> %q", view.Normalized, again)
		}
		if !utf8.ValidString(view.Normalized) {
			t.Fatalf("normalized output is not valid UTF-8: %q", view.Normalized)
		}
		if !reflect.DeepEqual(view.Tokens, Tokenize(view.Normalized)) {
			t.Fatalf("tokens %#v do not match split of %q", view.Tokens, view.Normalized)
		}
		for _, token := range view.Tokens {
			if token == "" {
				t.Fatal("empty token")
			}
			if strings.IndexFunc(token, isSpace) >= 0 {
				t.Fatalf("token %q contains whitespace", token)
			}
		}
		if strings.TrimFunc(view.Normalized, isSpace) == "" && len(view.Tokens) != 0 {
			t.Fatalf("whitespace-only input produced tokens %#v", view.Tokens)
		}
		if strings.Join(view.Tokens, "") != strings.Map(dropSpace, view.Normalized) {
			t.Fatalf("tokens %#v lost characters from %q", view.Tokens, view.Normalized)
		}
	})
}

func dropSpace(r rune) rune {
	if isSpace(r) {
		return -1
	}
	return r
}
