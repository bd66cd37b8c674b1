// Command omapctl inspects and edits sectioned name=value documents while
// keeping the order of sections and names.
package main

func main() {
	execute()
}
