// gwydump inspects Gwyddion GWY files: it prints the channels, selections
// and graphs a file contains, and can round-trip a file through the codec
// layer to exercise the write path.
package main

import "github.com/robert-malhotra/go-gwyfile/cmd/gwydump/cmd"

func main() {
	cmd.Execute()
}
