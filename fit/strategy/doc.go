// Package strategy implements the best-fit selection strategies the
// benchmark compares.
//
// # Contract
//
// Every strategy answers the same question: given a free list and a wanted
// size, remove and return the smallest block whose length is at least the
// wanted size. When several blocks tie for smallest, the winner is the one
// encountered first in list order, so all strategies agree on every input.
//
// # Implementations
//
// Four strategies express the same selection in different shapes. Rebuild
// filters the candidates and reconstructs the remainder. SwapRemove
// enumerates candidate indexes and removes the winner in place. Fold
// reduces the list through a value accumulator. Scan is the plain indexed
// loop. They differ only in mechanics, never in the chosen block, which is
// exactly what makes their cycle costs comparable.
//
// # Failure
//
// A request no block can satisfy is a hard error. Take returns an error
// wrapping ErrNoFit and leaves the list untouched. Callers treat it as
// fatal rather than a condition to retry.
package strategy
