// Command hesapla evaluates the site's health calculators from the terminal.
package main

func main() {
	Execute()
}
