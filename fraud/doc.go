// Package fraud implements analysis heuristics over signed transactions.
//
// Two analyses are provided:
//
//   - DetectByBlocks groups transactions whose signatures are block
//     permutations of each other and scores how suspicious each block size
//     is. Large groups of mutually-permuted signatures indicate generated,
//     rather than organic, transactions.
//
//   - Rectify evaluates candidate scoring functions by simulating a
//     linear-probing hash table over their outputs and measuring the worst
//     probe chain each one produces. The function with the shortest worst
//     chain distributes transactions best.
//
// Both analyses are pure: they read the transactions and return a verdict,
// mutating nothing.
package fraud
