package content

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusPending, true},
		{StatusDraft, StatusPublished, false},
		{StatusDraft, StatusRejected, false},
		{StatusPending, StatusPublished, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusDraft, true},
		{StatusPublished, StatusDraft, false},
		{StatusPublished, StatusPending, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusDraft, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestContentTypeValid(t *testing.T) {
	for _, valid := range []ContentType{TypePost, TypeStory, TypeReel, TypeMessage, TypePromotion} {
		if !valid.Valid() {
			t.Errorf("%s should be valid", valid)
		}
	}
	if ContentType("video").Valid() {
		t.Error("unknown content type should be invalid")
	}
}

func TestTitleFromBody(t *testing.T) {
	if got := titleFromBody("  Morning routine\nfull body text"); got != "Morning routine" {
		t.Errorf("got %q", got)
	}
	if got := titleFromBody("   "); got != "" {
		t.Errorf("blank body should yield empty title, got %q", got)
	}
	long := make([]byte, 0, 100)
	for i := 0; i < 100; i++ {
		long = append(long, 'a')
	}
	got := titleFromBody(string(long))
	if len([]rune(got)) != titleFromBodyLength+1 {
		t.Errorf("long body title length = %d", len([]rune(got)))
	}
}
