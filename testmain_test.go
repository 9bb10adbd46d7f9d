package dunecorex

import (
	"testing"

	"github.com/dunequery/dunecorex/testutils"
)

func TestMain(m *testing.M) {
	testutils.SetupTests(m)
}
