// Public domain.

package main

import "github.com/astrophysicsvivien/cwscan/internal/scanprog"

func main() {
	scanprog.Main()
}
