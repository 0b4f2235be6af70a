package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsafeFieldPattern(t *testing.T) {
	t.Parallel()

	safe := []string{
		"Jane", "O-Neil", "Introduction to Go", "555 1234",
		"Portland, oregon", // "or" only matches as a bare word
		"", "history of art",
	}
	unsafe := []string{
		"<script>", "a&b", "it's", "x=1", "$dollar",
		"1 OR 1", "robert'); DROP TABLE", "a or b",
	}

	for _, s := range safe {
		assert.False(t, unsafeFieldPattern.MatchString(s), "expected %q to be accepted", s)
	}
	for _, s := range unsafe {
		assert.True(t, unsafeFieldPattern.MatchString(s), "expected %q to be rejected", s)
	}
}
