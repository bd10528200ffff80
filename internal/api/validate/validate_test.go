package validate

import "testing"

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantMsgs int
	}{
		{"valid", "Alice", "a@x.com", "secret1", 0},
		{"missing name", "", "a@x.com", "secret1", 1},
		{"bad email", "Alice", "not-an-email", "secret1", 1},
		{"short password", "Alice", "a@x.com", "12345", 1},
		{"everything wrong", "", "nope", "", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := Register(tt.userName, tt.email, tt.password)
			if len(msgs) != tt.wantMsgs {
				t.Fatalf("Register() = %v, want %d messages", msgs, tt.wantMsgs)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	if msgs := Login("a@x.com", "secret1"); len(msgs) != 0 {
		t.Fatalf("valid login input rejected: %v", msgs)
	}
	if msgs := Login("bad", ""); len(msgs) != 2 {
		t.Fatalf("want 2 messages, got %v", msgs)
	}
	if msgs := Login("a@x.com", ""); len(msgs) != 1 || msgs[0] != "Password is required" {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}
