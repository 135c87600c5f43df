// SPDX-License-Identifier: EPL-2.0

package batch_test

import (
	"fmt"

	"github.com/ik5/spconv/batch"
)

func ExampleOutputName() {
	fmt.Println(batch.OutputName("song.mp3", "-SPC"))
	fmt.Println(batch.OutputName("sub/b.flac", "-SPC"))
	// Output:
	// song-SPC.mp3
	// sub/b-SPC.flac
}
