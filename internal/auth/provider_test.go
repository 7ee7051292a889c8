package auth

import "testing"

func TestHeaderProviderExtractsBearerToken(t *testing.T) {
	p := HeaderProvider{Authorization: "Bearer tok-123"}
	tok, ok := p.Token()
	if !ok || tok != "tok-123" {
		t.Fatalf("expected tok-123, got %q ok=%v", tok, ok)
	}
	if !p.SignedIn() {
		t.Fatalf("expected signed-in caller")
	}
}

func TestHeaderProviderRejectsMissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Bearer ", "Basic abc", "tok-123"} {
		p := HeaderProvider{Authorization: header}
		if _, ok := p.Token(); ok {
			t.Fatalf("header %q should not yield a token", header)
		}
		if p.SignedIn() {
			t.Fatalf("header %q should not count as signed in", header)
		}
	}
}
