package idgen

import (
	"strings"
	"testing"
)

func TestGenerateSecureID(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		length     int
		wantErr    bool
		wantPrefix string
	}{
		{
			name:       "generate persona ID",
			prefix:     "pers",
			length:     16,
			wantErr:    false,
			wantPrefix: "pers_",
		},
		{
			name:       "generate message ID",
			prefix:     "msg",
			length:     16,
			wantErr:    false,
			wantPrefix: "msg_",
		},
		{
			name:       "generate content ID",
			prefix:     "cont",
			length:     16,
			wantErr:    false,
			wantPrefix: "cont_",
		},
		{
			name:       "generate short ID",
			prefix:     "test",
			length:     8,
			wantErr:    false,
			wantPrefix: "test_",
		},
		{
			name:       "generate long ID",
			prefix:     "test",
			length:     32,
			wantErr:    false,
			wantPrefix: "test_",
		},
		{
			name:    "empty prefix",
			prefix:  "",
			length:  16,
			wantErr: true,
		},
		{
			name:    "zero length",
			prefix:  "test",
			length:  0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSecureID(tt.prefix, tt.length)
			if (err != nil) != tt.wantErr {
				t.Errorf("GenerateSecureID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if !strings.HasPrefix(got, tt.wantPrefix) {
					t.Errorf("GenerateSecureID() = %v, want prefix %v", got, tt.wantPrefix)
				}
				expectedLen := len(tt.prefix) + 1 + tt.length
				if len(got) != expectedLen {
					t.Errorf("GenerateSecureID() length = %v, want %v", len(got), expectedLen)
				}
				suffix := got[len(tt.prefix)+1:]
				for _, char := range suffix {
					if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
						t.Errorf("GenerateSecureID() contains invalid character: %c", char)
					}
				}
			}
		})
	}
}

func TestGenerateSecureID_Uniqueness(t *testing.T) {
	const iterations = 10000
	seen := make(map[string]bool)

	for i := 0; i < iterations; i++ {
		id, err := GenerateSecureID("test", 16)
		if err != nil {
			t.Fatalf("GenerateSecureID() error = %v", err)
		}
		if seen[id] {
			t.Errorf("GenerateSecureID() generated duplicate ID: %v", id)
		}
		seen[id] = true
	}

	if len(seen) != iterations {
		t.Errorf("Expected %d unique IDs, got %d", iterations, len(seen))
	}
}

func TestValidateIDFormat(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		expectedPrefix string
		want           bool
	}{
		{
			name:           "valid persona ID",
			id:             "pers_a3f8d2k9p1m4n7q2",
			expectedPrefix: "pers",
			want:           true,
		},
		{
			name:           "valid message ID",
			id:             "msg_x7y2z5w8r3t6u9v1",
			expectedPrefix: "msg",
			want:           true,
		},
		{
			name:           "valid project ID",
			id:             "proj_c4d8e1f5g9h2j6k3",
			expectedPrefix: "proj",
			want:           true,
		},
		{
			name:           "wrong prefix",
			id:             "pers_a3f8d2k9p1m4n7q2",
			expectedPrefix: "msg",
			want:           false,
		},
		{
			name:           "missing underscore",
			id:             "persa3f8d2k9p1m4n7q2",
			expectedPrefix: "pers",
			want:           false,
		},
		{
			name:           "empty suffix",
			id:             "pers_",
			expectedPrefix: "pers",
			want:           false,
		},
		{
			name:           "invalid characters (uppercase)",
			id:             "pers_A3F8D2K9P1M4N7Q2",
			expectedPrefix: "pers",
			want:           false,
		},
		{
			name:           "invalid characters (special chars)",
			id:             "pers_a3f8-d2k9-p1m4",
			expectedPrefix: "pers",
			want:           false,
		},
		{
			name:           "invalid characters (underscore in suffix)",
			id:             "pers_a3f8_d2k9",
			expectedPrefix: "pers",
			want:           false,
		},
		{
			name:           "empty ID",
			id:             "",
			expectedPrefix: "pers",
			want:           false,
		},
		{
			name:           "only prefix",
			id:             "pers",
			expectedPrefix: "pers",
			want:           false,
		},
		{
			name:           "numbers only suffix",
			id:             "test_123456789",
			expectedPrefix: "test",
			want:           true,
		},
		{
			name:           "letters only suffix",
			id:             "test_abcdefghij",
			expectedPrefix: "test",
			want:           true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateIDFormat(tt.id, tt.expectedPrefix); got != tt.want {
				t.Errorf("ValidateIDFormat(%q, %q) = %v, want %v", tt.id, tt.expectedPrefix, got, tt.want)
			}
		})
	}
}

func TestValidateIDFormat_GeneratedIDs(t *testing.T) {
	prefixes := []string{"proj", "pers", "msg", "cont", "acct", "feat", "mile", "goal"}
	lengths := []int{8, 16, 32}

	for _, prefix := range prefixes {
		for _, length := range lengths {
			id, err := GenerateSecureID(prefix, length)
			if err != nil {
				t.Fatalf("GenerateSecureID() error = %v", err)
			}
			if !ValidateIDFormat(id, prefix) {
				t.Errorf("Generated ID %q failed validation with prefix %q", id, prefix)
			}
		}
	}
}

func TestHashKey256(t *testing.T) {
	// SHA-256 of "test-key"
	const want = "62af8704764faf8ea82fc61ce9c4c3908b6cb97d463a634e9e587d7c885db0ef"
	got := HashKey256("test-key")
	if len(got) != 64 {
		t.Fatalf("HashKey256() length = %v, want 64", len(got))
	}
	for _, char := range got {
		if !((char >= 'a' && char <= 'f') || (char >= '0' && char <= '9')) {
			t.Fatalf("HashKey256() contains invalid hex character: %c", char)
		}
	}
	if got != want {
		t.Errorf("HashKey256(\"test-key\") = %v, want %v", got, want)
	}
}

func TestHashKey256_Deterministic(t *testing.T) {
	if HashKey256("webhook-secret") != HashKey256("webhook-secret") {
		t.Error("HashKey256() not deterministic")
	}
	if HashKey256("key1") == HashKey256("key2") {
		t.Error("HashKey256() generated same hash for different inputs")
	}
}

func BenchmarkGenerateSecureID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := GenerateSecureID("pers", 16)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidateIDFormat(b *testing.B) {
	id := "pers_a3f8d2k9p1m4n7q2"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ValidateIDFormat(id, "pers")
	}
}
