package bytebuf_test

import (
	"fmt"
	"slices"

	"github.com/LerianStudio/lib-pinpoint/pinpoint/bytebuf"
)

func ExampleBuffer_IntoPin() {
	buf := bytebuf.FromString("dcba")

	p := buf.IntoPin()
	slices.Reverse(p.Slice())
	p.Unpin()

	fmt.Println(buf.String())

	// Output:
	// abcd
}

func ExampleView() {
	view := bytebuf.FromString("hello").View()

	fmt.Println(view.Len())
	fmt.Println(view.String())

	// Output:
	// 5
	// hello
}
