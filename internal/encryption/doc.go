// Package encryption derives passphrase keys for Blowfish, Twofish and the three
// Threefish widths, and rewrites files in place one cipher block at a time.
//
// Blocks are transformed independently, there is no chaining between them and no
// authentication tag. The final block of every rewritten file has its trailing
// zero bytes removed, in both directions.
package encryption
