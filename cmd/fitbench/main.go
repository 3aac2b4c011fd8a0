// fitbench compares best-fit free-block selection strategies over
// synthetic free lists and reports per-strategy cycle costs.
package main

func main() {
	execute()
}
