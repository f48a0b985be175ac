package nets

import (
	"testing"

	"github.com/reusee/dscope"

	"probelab/configs"
	"probelab/modes"
)

func TestIsLocalAddr(t *testing.T) {
	loader := configs.NewLoader(nil, "")
	dscope.New(
		new(Module),
		modes.ForTest(t),
		&loader,
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		if ok, err := isLocalAddr("127.0.0.1:80"); err != nil || !ok {
			t.Fatalf("got %v %v", ok, err)
		}
		if ok, err := isLocalAddr("localhost"); err != nil || !ok {
			t.Fatalf("got %v %v", ok, err)
		}
	})
}
