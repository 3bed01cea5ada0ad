// Command jsmin minifies a single JavaScript source file.
package main

import "github.com/jscompiler/jsmin/cmd/jsmin/cmd"

func main() {
	cmd.Execute()
}
