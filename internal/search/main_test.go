package search

import (
	"testing"

	"go.uber.org/goleak"
)

// match pools and matchers must not leave workers behind
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
